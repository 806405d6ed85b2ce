package department

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	IncrementPopulation(ctx context.Context, name string) error
	SumEmployeePay(ctx context.Context, name string) (sql.NullFloat64, error)
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

func (r *repository) Create(ctx context.Context, dept *Department) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, `
			INSERT INTO dept (dept_name, base_pay, dept_populus)
			VALUES ($1, $2, $3)
		`, dept.Name, dept.BasePay, dept.Population)
		return err
	}
	return r.db.WithContext(ctx).Create(dept).Error
}

// IncrementPopulation bumps dept_populus in a single UPDATE, so it stays
// atomic under concurrent writers without application-level locking.
func (r *repository) IncrementPopulation(ctx context.Context, name string) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, `
			UPDATE dept SET dept_populus = dept_populus + 1 WHERE dept_name = $1
		`, name)
		return err
	}
	return r.db.WithContext(ctx).
		Exec("UPDATE dept SET dept_populus = dept_populus + 1 WHERE dept_name = ?", name).
		Error
}

// SumEmployeePay sums employees.pay over the exact department name. The sum
// over zero rows is NULL; the service treats that as not found.
func (r *repository) SumEmployeePay(ctx context.Context, name string) (sql.NullFloat64, error) {
	var total sql.NullFloat64
	row := r.db.WithContext(ctx).
		Table("employees").
		Select("SUM(pay)").
		Where("department = ?", name).
		Row()
	err := row.Scan(&total)
	return total, err
}
