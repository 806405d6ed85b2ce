package department

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	departmenterrors "go-payledger/internal/department/errors"
	"go-payledger/internal/history"
	"go-payledger/internal/shared/apperror"
	"go-payledger/internal/shared/contextutil"
	"go-payledger/internal/shared/money"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	TotalPaidCacheKey = "departments:total_paid"
	totalPaidCacheTTL = 30 * time.Second
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (CreateDepartmentResponse, error)
	TotalPay(ctx context.Context, name string) (TotalPayResponse, error)
	TotalPaidByDepartment(ctx context.Context) (TotalPaidReportResponse, error)
	History(ctx context.Context, name string) (HistoryResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	histories history.Repository
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	histories history.Repository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		histories: histories,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateDepartmentRequest,
) (CreateDepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create department requested",
		zap.String("request_id", rid),
		zap.String("dept_name", req.Name),
		zap.Float64("base_pay", req.BasePay),
	)

	if req.BasePay < 0 {
		s.logger.Warn("create department rejected negative base pay",
			zap.String("request_id", rid),
			zap.Float64("base_pay", req.BasePay),
		)
		return CreateDepartmentResponse{}, departmenterrors.ErrNegativeBasePay
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create department begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return CreateDepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// No duplicate check: repeated creates with the same name insert
	// multiple rows. The legacy schema has no unique constraint and the
	// contract documents the quirk.
	dept := &Department{
		Name:       req.Name,
		BasePay:    req.BasePay,
		Population: 0,
	}

	if err := qtx.Create(ctx, dept); err != nil {
		s.logger.Error("create department persist failed", zap.String("request_id", rid), zap.Error(err))
		return CreateDepartmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create department commit failed", zap.String("request_id", rid), zap.Error(err))
		return CreateDepartmentResponse{}, err
	}

	s.logger.Info("create department success",
		zap.String("request_id", rid),
		zap.String("dept_name", req.Name),
	)

	return CreateDepartmentResponse{
		Status: fmt.Sprintf(
			"Successfully added new department named %s with a base pay of $%v",
			req.Name, req.BasePay,
		),
	}, nil
}

func (s *service) TotalPay(
	ctx context.Context,
	name string,
) (TotalPayResponse, error) {
	s.logger.Debug("total pay requested", zap.String("department", name))

	total, err := s.repo.SumEmployeePay(ctx, name)
	if err != nil {
		s.logger.Error("total pay query failed", zap.String("department", name), zap.Error(err))
		return TotalPayResponse{}, err
	}

	if !total.Valid {
		return TotalPayResponse{}, departmenterrors.ErrNoEmployeePay
	}

	return TotalPayResponse{
		Department: name,
		TotalPay:   money.Round2(total.Float64),
	}, nil
}

func (s *service) TotalPaidByDepartment(ctx context.Context) (TotalPaidReportResponse, error) {
	s.logger.Debug("total paid report requested")

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, TotalPaidCacheKey).Result(); err == nil {
			var resp TotalPaidReportResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight collapses concurrent recomputes of the full-table
	// aggregate into one query.
	v, err, _ := s.sf.Do(TotalPaidCacheKey, func() (interface{}, error) {
		totals, err := s.histories.TotalPaidByDepartment(ctx)
		if err != nil {
			// The specific failure is logged, never exposed.
			s.logger.Error("total paid aggregation failed", zap.Error(err))
			return nil, apperror.Wrap(
				err,
				apperror.CodeInternalError,
				"An error occurred while calculating the total paid by department",
				http.StatusInternalServerError,
			)
		}

		if len(totals) == 0 {
			return nil, departmenterrors.ErrNoHistoryRecords
		}

		resp := TotalPaidReportResponse{
			Status:                "OK",
			TotalPaidByDepartment: make([]DepartmentTotalResponse, len(totals)),
		}
		for i, t := range totals {
			resp.TotalPaidByDepartment[i] = DepartmentTotalResponse{
				Department: t.Department,
				TotalPaid:  money.Round2(t.TotalPaid),
			}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, TotalPaidCacheKey, jsonData, totalPaidCacheTTL)
			}
		}

		return resp, nil
	})

	if err != nil {
		return TotalPaidReportResponse{}, err
	}

	return v.(TotalPaidReportResponse), nil
}

func (s *service) History(
	ctx context.Context,
	name string,
) (HistoryResponse, error) {
	s.logger.Debug("department history requested", zap.String("department", name))

	records, err := s.histories.FindByDepartment(ctx, name)
	if err != nil {
		s.logger.Error("department history query failed", zap.String("department", name), zap.Error(err))
		return HistoryResponse{}, err
	}

	if len(records) == 0 {
		return HistoryResponse{}, departmenterrors.ErrNoDepartmentHistory
	}

	return HistoryResponse{
		Status:            "OK",
		DepartmentHistory: mergeTenures(records),
	}, nil
}

// mergeTenures folds multiple ledger rows per employee into one record.
// The first row seen (ledger order) establishes emp_id, emp_name and
// day_wage; later rows only add their days_employed. Keeping the first
// wage even when later tenures differ matches the legacy contract.
func mergeTenures(records []history.Record) []EmployeeTenureResponse {
	merged := make([]EmployeeTenureResponse, 0, len(records))
	seen := make(map[int64]int, len(records))

	for _, rec := range records {
		if idx, ok := seen[rec.EmpID]; ok {
			merged[idx].DaysEmployed += rec.DaysEmployed
			continue
		}
		seen[rec.EmpID] = len(merged)
		merged = append(merged, EmployeeTenureResponse{
			EmpID:        rec.EmpID,
			EmpName:      rec.EmpName,
			DaysEmployed: rec.DaysEmployed,
			DayWage:      rec.DayWage,
		})
	}

	return merged
}
