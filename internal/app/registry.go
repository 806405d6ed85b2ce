package app

import (
	"database/sql"
	"os"

	"go-payledger/internal/department"
	"go-payledger/internal/employee"
	"go-payledger/internal/history"
	"go-payledger/internal/messaging/kafka"
	"go-payledger/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	historyRepo := history.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	departmentService := department.NewService(db, departmentRepo, historyRepo, rdb)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, departmentRepo, outboxRepo)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)

	// --- Routes Registration ---
	api := router.Group("")
	api.Use(middleware.RequestID())
	api.Use(middleware.RateLimitByIP(50, 100))
	api.Use(middleware.APIKeyAuth(os.Getenv("API_KEY")))
	{
		department.RegisterRoutes(api, departmentHandler)
		employee.RegisterRoutes(api, employeeHandler)
	}

	return nil
}
