package biz

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockEmployeeRepo is a mock implementation of EmployeeRepo
type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, employee *Employee) (*Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Employee), args.Error(1)
}

func (m *MockEmployeeRepo) Update(ctx context.Context, employee *Employee) (*Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Employee), args.Error(1)
}

func (m *MockEmployeeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Employee), args.Error(1)
}

func (m *MockEmployeeRepo) GetByEmail(ctx context.Context, email string) (*Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Employee), args.Error(1)
}

func (m *MockEmployeeRepo) List(ctx context.Context, filter *ListFilter) (*ListResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ListResult), args.Error(1)
}

func (m *MockEmployeeRepo) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepo) GetEventPublisher() EventPublisher {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(EventPublisher)
}

// MockAgreementRepo is a mock implementation of AgreementRepo
type MockAgreementRepo struct {
	mock.Mock
}

func (m *MockAgreementRepo) Create(ctx context.Context, agreement *Agreement) (*Agreement, error) {
	args := m.Called(ctx, agreement)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Agreement), args.Error(1)
}

func (m *MockAgreementRepo) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*Agreement, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Agreement), args.Error(1)
}

func (m *MockAgreementRepo) DeleteByEmployee(ctx context.Context, employeeID uuid.UUID) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishEmployeeCreated(ctx context.Context, employee *Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishEmployeeUpdated(ctx context.Context, employee *Employee, updatedFields []string) error {
	args := m.Called(ctx, employee, updatedFields)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishEmployeeDeleted(ctx context.Context, employee *Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishEmployeesImported(ctx context.Context, importedCount int, rowErrors []string) error {
	args := m.Called(ctx, importedCount, rowErrors)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishAgreementGenerated(ctx context.Context, agreement *Agreement) error {
	args := m.Called(ctx, agreement)
	return args.Error(0)
}

// fakeSheetCodec feeds canned rows into import tests without real workbooks.
type fakeSheetCodec struct {
	rows    [][]string
	decErr  error
	tpl     []byte
	tplErr  error
	lastSrc string
}

func (f *fakeSheetCodec) Decode(filename string, data []byte) ([][]string, error) {
	f.lastSrc = filename
	if f.decErr != nil {
		return nil, f.decErr
	}
	return f.rows, nil
}

func (f *fakeSheetCodec) EncodeTemplate(headers []string) ([]byte, error) {
	if f.tplErr != nil {
		return nil, f.tplErr
	}
	return f.tpl, nil
}
