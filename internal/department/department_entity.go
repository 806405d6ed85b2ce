package department

import "time"

// Department maps the legacy dept table. Name carries no unique constraint,
// so duplicate departments are representable and creatable.
type Department struct {
	ID         int64     `gorm:"column:dept_id;primaryKey"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	Name       string    `gorm:"column:dept_name"`
	BasePay    float64   `gorm:"column:base_pay"`
	Population int64     `gorm:"column:dept_populus"`
}

func (Department) TableName() string {
	return "dept"
}
