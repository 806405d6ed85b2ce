package history

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=history_repo.go -destination=mock/history_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *Record) error
	FindByDepartment(ctx context.Context, department string) ([]Record, error)
	TotalPaidByDepartment(ctx context.Context) ([]DepartmentTotal, error)
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

func (r *repository) Create(ctx context.Context, record *Record) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, `
			INSERT INTO history (emp_name, days_employed, day_wage, in_dept, emp_id)
			VALUES ($1, $2, $3, $4, $5)
		`, record.EmpName, record.DaysEmployed, record.DayWage, record.InDept, record.EmpID)
		return err
	}
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByDepartment orders by ledger_id so "first seen" is deterministic for
// the per-employee merge done by the service.
func (r *repository) FindByDepartment(ctx context.Context, department string) ([]Record, error) {
	var records []Record
	err := r.db.WithContext(ctx).
		Where("in_dept = ?", department).
		Order("ledger_id ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) TotalPaidByDepartment(ctx context.Context) ([]DepartmentTotal, error) {
	var totals []DepartmentTotal
	query := `
SELECT
	in_dept AS department,
	SUM(days_employed * day_wage) AS total_paid
FROM history
GROUP BY in_dept
`

	err := r.db.WithContext(ctx).Raw(query).Scan(&totals).Error
	return totals, err
}
