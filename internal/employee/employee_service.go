package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go-payledger/internal/department"
	employeeerrors "go-payledger/internal/employee/errors"
	"go-payledger/internal/events"
	"go-payledger/internal/messaging/kafka"
	"go-payledger/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	departments department.Repository
	outbox      kafka.OutboxRepository
	logger      *zap.Logger
}

func NewService(db *sql.DB, repo Repository, departments department.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, departments, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	departments department.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		departments: departments,
		outbox:      outboxRepo,
		logger:      l,
	}
}

// Create inserts the employee row and bumps dept_populus for the named
// department in the same transaction. The department link is by name only;
// a typo'd department simply increments nothing, matching the loose legacy
// schema.
func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (CreateEmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
		zap.String("department", req.Department),
	)

	if req.Pay < 0 {
		return CreateEmployeeResponse{}, employeeerrors.ErrNegativePay
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return CreateEmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl := &Employee{
		Name:       req.Name,
		Skills:     strings.Join(req.Skills, ", "),
		Pay:        req.Pay,
		Department: req.Department,
		Level:      req.Level,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return CreateEmployeeResponse{}, err
	}

	if err := s.departments.WithTx(tx).IncrementPopulation(ctx, req.Department); err != nil {
		s.logger.Error("create employee increment population failed",
			zap.String("request_id", rid),
			zap.String("department", req.Department),
			zap.Error(err),
		)
		return CreateEmployeeResponse{}, err
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.ID,
			Name:       empl.Name,
			Department: empl.Department,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return CreateEmployeeResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   fmt.Sprintf("%d", empl.ID),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.Int64("employee_id", empl.ID),
				zap.Error(err),
			)
			return CreateEmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return CreateEmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", empl.ID),
		zap.String("department", empl.Department),
	)

	return CreateEmployeeResponse{
		Status: fmt.Sprintf("Successfully added new employee named %s to %s", req.Name, req.Department),
	}, nil
}
