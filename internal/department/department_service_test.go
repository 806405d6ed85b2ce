package department_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-payledger/internal/department"
	departmenterrors "go-payledger/internal/department/errors"
	"go-payledger/internal/history"
	"go-payledger/internal/shared/apperror"

	departmentMock "go-payledger/internal/department/mock"
	historyMock "go-payledger/internal/history/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   department.Service
	repo      *departmentMock.MockRepository
	histories *historyMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := departmentMock.NewMockRepository(ctrl)
	histories := historyMock.NewMockRepository(ctrl)

	svc := department.NewService(db, repo, histories, dbRedis)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		histories: histories,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := department.CreateDepartmentRequest{Name: "Data Engineering", BasePay: 55000}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, d *department.Department) error {
				assert.Equal(t, req.Name, d.Name)
				assert.Equal(t, req.BasePay, d.BasePay)
				assert.Equal(t, int64(0), d.Population)
				return nil
			})

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Contains(t, resp.Status, "Data Engineering")
		assert.Contains(t, resp.Status, "55000")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative base pay rejected before any insert", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := department.CreateDepartmentRequest{Name: "Data Engineering", BasePay: -1}

		// No repo expectations: the row must never be written.
		_, err := deps.service.Create(ctx, req)

		assert.Error(t, err)
		assert.True(t, errors.Is(err, departmenterrors.ErrNegativeBasePay))
		assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("repo error -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := department.CreateDepartmentRequest{Name: "Data Engineering", BasePay: 55000}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("db error"))

		_, err := deps.service.Create(ctx, req)

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestDepartmentService_TotalPay(t *testing.T) {
	ctx := context.Background()

	t.Run("success rounds to 2 decimals", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			SumEmployeePay(ctx, "Data Engineering").
			Return(sql.NullFloat64{Float64: 100.005 + 200.005, Valid: true}, nil)

		resp, err := deps.service.TotalPay(ctx, "Data Engineering")

		assert.NoError(t, err)
		assert.Equal(t, "Data Engineering", resp.Department)
		assert.Equal(t, 300.01, resp.TotalPay)
	})

	t.Run("null sum -> not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			SumEmployeePay(ctx, "Ghost Department").
			Return(sql.NullFloat64{}, nil)

		_, err := deps.service.TotalPay(ctx, "Ghost Department")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, departmenterrors.ErrNoEmployeePay))
		assert.Equal(t, http.StatusNotFound, apperror.ToHTTP(err).Status)
	})

	t.Run("db error propagates", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			SumEmployeePay(ctx, "Data Engineering").
			Return(sql.NullFloat64{}, errors.New("db connection error"))

		_, err := deps.service.TotalPay(ctx, "Data Engineering")

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, apperror.ToHTTP(err).Status)
	})
}

func TestDepartmentService_TotalPaidByDepartment(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := department.TotalPaidReportResponse{
			Status: "OK",
			TotalPaidByDepartment: []department.DepartmentTotalResponse{
				{Department: "A", TotalPaid: 150.0},
			},
		}
		jsonResp, _ := json.Marshal(cached)

		deps.redismock.ExpectGet(department.TotalPaidCacheKey).SetVal(string(jsonResp))

		deps.histories.EXPECT().TotalPaidByDepartment(gomock.Any()).Times(0)

		resp, err := deps.service.TotalPaidByDepartment(ctx)

		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
	})

	t.Run("cache miss aggregates and rounds", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(department.TotalPaidCacheKey).RedisNil()

		// (A,10,5.0),(A,20,5.0),(B,5,10.0) grouped by the database.
		deps.histories.EXPECT().
			TotalPaidByDepartment(ctx).
			Return([]history.DepartmentTotal{
				{Department: "A", TotalPaid: 150.0},
				{Department: "B", TotalPaid: 50.0},
			}, nil).
			Times(1)

		expected := department.TotalPaidReportResponse{
			Status: "OK",
			TotalPaidByDepartment: []department.DepartmentTotalResponse{
				{Department: "A", TotalPaid: 150.0},
				{Department: "B", TotalPaid: 50.0},
			},
		}
		jsonData, _ := json.Marshal(expected)
		deps.redismock.ExpectSet(department.TotalPaidCacheKey, jsonData, 30*time.Second).SetVal("OK")

		resp, err := deps.service.TotalPaidByDepartment(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "OK", resp.Status)
		assert.ElementsMatch(t, expected.TotalPaidByDepartment, resp.TotalPaidByDepartment)
	})

	t.Run("empty history -> not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(department.TotalPaidCacheKey).RedisNil()

		deps.histories.EXPECT().
			TotalPaidByDepartment(ctx).
			Return([]history.DepartmentTotal{}, nil)

		_, err := deps.service.TotalPaidByDepartment(ctx)

		assert.Error(t, err)
		assert.True(t, errors.Is(err, departmenterrors.ErrNoHistoryRecords))
		assert.Equal(t, http.StatusNotFound, apperror.ToHTTP(err).Status)
	})

	t.Run("db error -> generic internal error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(department.TotalPaidCacheKey).RedisNil()

		deps.histories.EXPECT().
			TotalPaidByDepartment(ctx).
			Return(nil, errors.New("relation history does not exist"))

		_, err := deps.service.TotalPaidByDepartment(ctx)

		assert.Error(t, err)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "An error occurred while calculating the total paid by department", httpErr.Message)
		// The underlying failure stays out of the client-facing message.
		assert.NotContains(t, httpErr.Message, "relation")
	})
}

func TestDepartmentService_History(t *testing.T) {
	ctx := context.Background()

	t.Run("merges rows by employee id, first wage wins", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.histories.EXPECT().
			FindByDepartment(ctx, "D").
			Return([]history.Record{
				{LedgerID: 1, EmpID: 1, EmpName: "X", DaysEmployed: 10, DayWage: 5.0, InDept: "D"},
				{LedgerID: 2, EmpID: 2, EmpName: "Y", DaysEmployed: 7, DayWage: 8.0, InDept: "D"},
				{LedgerID: 3, EmpID: 1, EmpName: "X", DaysEmployed: 20, DayWage: 9.0, InDept: "D"},
			}, nil)

		resp, err := deps.service.History(ctx, "D")

		assert.NoError(t, err)
		assert.Equal(t, "OK", resp.Status)
		assert.Len(t, resp.DepartmentHistory, 2)

		// First-seen order is preserved.
		assert.Equal(t, int64(1), resp.DepartmentHistory[0].EmpID)
		assert.Equal(t, "X", resp.DepartmentHistory[0].EmpName)
		assert.Equal(t, int64(30), resp.DepartmentHistory[0].DaysEmployed)
		// Wage keeps the first-seen value, not the later 9.0.
		assert.Equal(t, 5.0, resp.DepartmentHistory[0].DayWage)

		assert.Equal(t, int64(2), resp.DepartmentHistory[1].EmpID)
		assert.Equal(t, int64(7), resp.DepartmentHistory[1].DaysEmployed)
	})

	t.Run("no rows -> not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.histories.EXPECT().
			FindByDepartment(ctx, "Ghost Department").
			Return(nil, nil)

		_, err := deps.service.History(ctx, "Ghost Department")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, departmenterrors.ErrNoDepartmentHistory))
		assert.Equal(t, http.StatusNotFound, apperror.ToHTTP(err).Status)
	})

	t.Run("db error propagates", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.histories.EXPECT().
			FindByDepartment(ctx, "D").
			Return(nil, errors.New("db connection error"))

		_, err := deps.service.History(ctx, "D")

		assert.Error(t, err)
	})
}
