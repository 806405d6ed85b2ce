package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// Create inserts the employee and fills in the identity the database
// assigned, so the caller can reference the new row in the same tx.
func (r *repository) Create(ctx context.Context, empl *Employee) error {
	if r.tx != nil {
		return r.tx.QueryRowContext(ctx, `
			INSERT INTO employees (name, skills, pay, department, level)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, empl.Name, empl.Skills, empl.Pay, empl.Department, empl.Level).Scan(&empl.ID)
	}
	return r.db.WithContext(ctx).Create(empl).Error
}
