package department

// CreateDepartmentRequest binds the legacy query-parameter contract of
// POST /departments/new.
type CreateDepartmentRequest struct {
	Name    string  `form:"dept_name" binding:"required"`
	BasePay float64 `form:"dept_basePay"`
}

type CreateDepartmentResponse struct {
	Status string `json:"status"`
}

type TotalPayResponse struct {
	Department string  `json:"department"`
	TotalPay   float64 `json:"total_pay"`
}

type DepartmentTotalResponse struct {
	Department string  `json:"department"`
	TotalPaid  float64 `json:"total_paid"`
}

type TotalPaidReportResponse struct {
	Status                string                    `json:"status"`
	TotalPaidByDepartment []DepartmentTotalResponse `json:"total_paid_by_department"`
}

// EmployeeTenureResponse is one merged per-employee history record.
type EmployeeTenureResponse struct {
	EmpID        int64   `json:"emp_id"`
	EmpName      string  `json:"emp_name"`
	DaysEmployed int64   `json:"days_employed"`
	DayWage      float64 `json:"day_wage"`
}

type HistoryResponse struct {
	Status            string                   `json:"status"`
	DepartmentHistory []EmployeeTenureResponse `json:"department_history"`
}
