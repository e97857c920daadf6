package biz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var importHeader = []string{"Full Name", "Email Address", "Designation", "Department", "Joining Date", "Annual CTC"}

func TestBulkImportMixedRows(t *testing.T) {
	uc, repo, _, sheets := setupUsecase()
	pub := new(MockEventPublisher)

	sheets.rows = [][]string{
		importHeader,
		{"Jane Doe", "jane@example.com", "Engineer", "Platform", "2024-06-01", "1200000"},
		{"Old Hand", "old@example.com", "Manager", "Ops", "2020-01-15", "900000"},
		{"No Email", "", "Engineer", "Platform", "2024-06-01", "800000"},
	}

	repo.On("CountAll", mock.Anything).Return(int64(10), nil)
	repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
	repo.On("GetByEmail", mock.Anything, "old@example.com").
		Return(&Employee{ID: uuid.New(), Email: "old@example.com"}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *Employee) bool {
		return e.EmpID == "EMP011" && e.Email == "jane@example.com"
	})).Return(&Employee{ID: uuid.New(), EmpID: "EMP011"}, nil)
	repo.On("GetEventPublisher").Return(EventPublisher(pub))
	pub.On("PublishEmployeesImported", mock.Anything, 1,
		[]string{"Skipped old@example.com: Exists", "Row 4: Email missing"}).Return(nil)

	report, err := uc.BulkImport(context.Background(), "staff.xlsx", []byte("payload"))

	assert.NoError(t, err)
	assert.Equal(t, 1, report.ImportedCount)
	assert.Equal(t, []string{
		"Skipped old@example.com: Exists",
		"Row 4: Email missing",
	}, report.Errors)
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestBulkImportSequenceSnapshot(t *testing.T) {
	uc, repo, _, sheets := setupUsecase()

	sheets.rows = [][]string{
		importHeader,
		{"A One", "a@example.com", "", "", "", "600000"},
		{"B Two", "b@example.com", "", "", "", "700000"},
		{"C Three", "c@example.com", "", "", "", "800000"},
	}

	// The count is read once at job start; later rows advance from the
	// snapshot plus rows imported so far, never from a fresh count.
	repo.On("CountAll", mock.Anything).Return(int64(2), nil).Once()
	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, nil)

	var assigned []string
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			assigned = append(assigned, args.Get(1).(*Employee).EmpID)
		}).
		Return(&Employee{ID: uuid.New()}, nil)
	repo.On("GetEventPublisher").Return(nil)

	report, err := uc.BulkImport(context.Background(), "staff.csv", []byte("payload"))

	assert.NoError(t, err)
	assert.Equal(t, 3, report.ImportedCount)
	assert.Empty(t, report.Errors)
	assert.Equal(t, []string{"EMP003", "EMP004", "EMP005"}, assigned)
	repo.AssertExpectations(t)
}

func TestBulkImportEmpIDConflictRetries(t *testing.T) {
	uc, repo, _, sheets := setupUsecase()

	sheets.rows = [][]string{
		importHeader,
		{"A One", "a@example.com", "", "", "", "600000"},
		{"B Two", "b@example.com", "", "", "", "700000"},
	}

	repo.On("CountAll", mock.Anything).Return(int64(0), nil)
	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, nil)
	// EMP001 is taken by a concurrent writer; the bump carries into row 3.
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *Employee) bool {
		return e.EmpID == "EMP001"
	})).Return(nil, ErrEmpIDConflict).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *Employee) bool {
		return e.EmpID == "EMP002"
	})).Return(&Employee{ID: uuid.New()}, nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *Employee) bool {
		return e.EmpID == "EMP003"
	})).Return(&Employee{ID: uuid.New()}, nil).Once()
	repo.On("GetEventPublisher").Return(nil)

	report, err := uc.BulkImport(context.Background(), "staff.xlsx", []byte("payload"))

	assert.NoError(t, err)
	assert.Equal(t, 2, report.ImportedCount)
	assert.Empty(t, report.Errors)
	repo.AssertExpectations(t)
}

func TestBulkImportRowCoercion(t *testing.T) {
	uc, repo, _, sheets := setupUsecase()

	sheets.rows = [][]string{
		{"email", "ctc"},
		{"sparse@example.com", "6,00,000"},
	}

	repo.On("CountAll", mock.Anything).Return(int64(0), nil)
	repo.On("GetByEmail", mock.Anything, "sparse@example.com").Return(nil, nil)

	var got *Employee
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			got = args.Get(1).(*Employee)
		}).
		Return(&Employee{ID: uuid.New()}, nil)
	repo.On("GetEventPublisher").Return(nil)

	_, err := uc.BulkImport(context.Background(), "sparse.csv", []byte("payload"))
	assert.NoError(t, err)

	assert.Equal(t, DefaultName, got.Name)
	assert.Equal(t, DefaultDesignation, got.Designation)
	assert.Equal(t, DefaultDepartment, got.Department)
	assert.Equal(t, DefaultLocation, got.Location)
	assert.Equal(t, DefaultEmploymentType, got.EmploymentType)
	assert.Equal(t, time.Now().Format(DateLayout), got.JoiningDate)
	assert.Equal(t, StatusPending, got.Status)

	assert.Equal(t, CompensationDetailed, got.Compensation.Kind)
	if assert.NotNil(t, got.Compensation.Breakdown) {
		assert.Equal(t, 600000.0, got.Compensation.Breakdown.CTC)
		assert.Equal(t, 300000.0, got.Compensation.Breakdown.BasicSalary)
		assert.Equal(t, 150000.0, got.Compensation.Breakdown.HRA)
		assert.Equal(t, 38400.0, got.Compensation.Breakdown.Deductions)
		assert.Equal(t, 600000.0, got.Compensation.Breakdown.NetSalary)
	}
}

func TestBulkImportExplicitEmpID(t *testing.T) {
	uc, repo, _, sheets := setupUsecase()

	sheets.rows = [][]string{
		{"emp_id", "email", "name"},
		{"EMP777", "keep@example.com", "Keep Mine"},
	}

	repo.On("CountAll", mock.Anything).Return(int64(50), nil)
	repo.On("GetByEmail", mock.Anything, "keep@example.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *Employee) bool {
		return e.EmpID == "EMP777"
	})).Return(&Employee{ID: uuid.New(), EmpID: "EMP777"}, nil)
	repo.On("GetEventPublisher").Return(nil)

	report, err := uc.BulkImport(context.Background(), "staff.xlsx", []byte("payload"))
	assert.NoError(t, err)
	assert.Equal(t, 1, report.ImportedCount)
	repo.AssertExpectations(t)
}

func TestBulkImportRowErrorDoesNotAbort(t *testing.T) {
	uc, repo, _, sheets := setupUsecase()

	sheets.rows = [][]string{
		{"email"},
		{"boom@example.com"},
		{"fine@example.com"},
	}

	repo.On("CountAll", mock.Anything).Return(int64(0), nil)
	repo.On("GetByEmail", mock.Anything, "boom@example.com").
		Return(nil, errors.New("store unavailable"))
	repo.On("GetByEmail", mock.Anything, "fine@example.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(&Employee{ID: uuid.New()}, nil)
	repo.On("GetEventPublisher").Return(nil)

	report, err := uc.BulkImport(context.Background(), "staff.csv", []byte("payload"))

	assert.NoError(t, err)
	assert.Equal(t, 1, report.ImportedCount)
	if assert.Len(t, report.Errors, 1) {
		assert.Contains(t, report.Errors[0], "Row 2:")
		assert.Contains(t, report.Errors[0], "store unavailable")
	}
}

func TestBulkImportFatalErrors(t *testing.T) {
	t.Run("unsupported format aborts the job", func(t *testing.T) {
		uc, _, _, sheets := setupUsecase()
		sheets.decErr = ErrUnsupportedFormat

		_, err := uc.BulkImport(context.Background(), "staff.pdf", []byte("payload"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("count failure aborts the job", func(t *testing.T) {
		uc, repo, _, sheets := setupUsecase()
		sheets.rows = [][]string{{"email"}, {"a@example.com"}}
		repo.On("CountAll", mock.Anything).Return(int64(0), errors.New("store unavailable"))

		_, err := uc.BulkImport(context.Background(), "staff.xlsx", []byte("payload"))
		assert.Error(t, err)
	})

	t.Run("empty sheet is an empty report", func(t *testing.T) {
		uc, _, _, sheets := setupUsecase()
		sheets.rows = [][]string{}

		report, err := uc.BulkImport(context.Background(), "empty.xlsx", []byte("payload"))
		assert.NoError(t, err)
		assert.Equal(t, 0, report.ImportedCount)
		assert.Empty(t, report.Errors)
	})

	t.Run("header-only sheet imports nothing", func(t *testing.T) {
		uc, repo, _, sheets := setupUsecase()
		sheets.rows = [][]string{importHeader}
		repo.On("CountAll", mock.Anything).Return(int64(0), nil)
		repo.On("GetEventPublisher").Return(nil)

		report, err := uc.BulkImport(context.Background(), "header.xlsx", []byte("payload"))
		assert.NoError(t, err)
		assert.Equal(t, 0, report.ImportedCount)
		assert.Empty(t, report.Errors)
	})
}

func TestFormatEmpID(t *testing.T) {
	assert.Equal(t, "EMP001", FormatEmpID(1))
	assert.Equal(t, "EMP042", FormatEmpID(42))
	assert.Equal(t, "EMP999", FormatEmpID(999))
	assert.Equal(t, "EMP1000", FormatEmpID(1000))
}
