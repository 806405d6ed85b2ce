package history

import "time"

// Record is one tenure segment in the employment ledger. The legacy schema
// links rows to departments and employees by free text / loose ids, not
// foreign keys, and the table keeps that shape.
type Record struct {
	LedgerID     int64     `gorm:"column:ledger_id;primaryKey"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	EmpName      string    `gorm:"column:emp_name"`
	DaysEmployed int64     `gorm:"column:days_employed"`
	DayWage      float64   `gorm:"column:day_wage"`
	InDept       string    `gorm:"column:in_dept"`
	EmpID        int64     `gorm:"column:emp_id"`
}

func (Record) TableName() string {
	return "history"
}

// DepartmentTotal is one row of the total-paid aggregate report.
type DepartmentTotal struct {
	Department string  `gorm:"column:department"`
	TotalPaid  float64 `gorm:"column:total_paid"`
}
