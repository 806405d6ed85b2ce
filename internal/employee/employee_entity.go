package employee

import "time"

// Employee maps the legacy employees table. Department is free text, not a
// foreign key, and skills are stored as one comma-joined text column.
type Employee struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	HireDate   time.Time `gorm:"column:hire_date;autoCreateTime"`
	Name       string    `gorm:"column:name"`
	Skills     string    `gorm:"column:skills"`
	Pay        float64   `gorm:"column:pay"`
	Department string    `gorm:"column:department"`
	Level      int       `gorm:"column:level"`
}

func (Employee) TableName() string {
	return "employees"
}
