package employee

type CreateEmployeeRequest struct {
	Name       string   `json:"name" binding:"required"`
	Skills     []string `json:"skills"`
	Pay        float64  `json:"pay" binding:"gte=0"`
	Department string   `json:"department" binding:"required"`
	Level      int      `json:"level"`
}

type CreateEmployeeResponse struct {
	Status string `json:"status"`
}
