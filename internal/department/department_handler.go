package department

import (
	"net/http"

	"go-payledger/internal/shared/apperror"
	"go-payledger/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("department.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("department request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Create handles POST /departments/new. Parameters ride in the query
// string, matching the legacy contract.
func (h *Handler) Create(c *gin.Context) {
	var req CreateDepartmentRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Warn("http create department validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

type departmentNameQuery struct {
	Name string `form:"department_name" binding:"required"`
}

// TotalPay handles GET /departments/daily_pay.
func (h *Handler) TotalPay(c *gin.Context) {
	var q departmentNameQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Warn("http total pay validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.TotalPay(c.Request.Context(), q.Name)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

// TotalPaid handles POST /departments/total_paid.
func (h *Handler) TotalPaid(c *gin.Context) {
	resp, err := h.service.TotalPaidByDepartment(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

// History handles GET /departments/history.
func (h *Handler) History(c *gin.Context) {
	var q departmentNameQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Warn("http department history validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.History(c.Request.Context(), q.Name)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}
