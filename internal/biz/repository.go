package biz

import (
	"context"

	"github.com/google/uuid"
)

// EventPublisher defines the interface for publishing domain events.
type EventPublisher interface {
	PublishEmployeeCreated(ctx context.Context, employee *Employee) error
	PublishEmployeeUpdated(ctx context.Context, employee *Employee, updatedFields []string) error
	PublishEmployeeDeleted(ctx context.Context, employee *Employee) error
	PublishEmployeesImported(ctx context.Context, importedCount int, rowErrors []string) error
	PublishAgreementGenerated(ctx context.Context, agreement *Agreement) error
}

// EmployeeRepo is the employee store contract. GetByEmail returns (nil, nil)
// when no record matches so callers can distinguish absence from store errors.
type EmployeeRepo interface {
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	Update(ctx context.Context, employee *Employee) (*Employee, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	List(ctx context.Context, filter *ListFilter) (*ListResult, error)
	CountAll(ctx context.Context) (int64, error)
	GetEventPublisher() EventPublisher
}

// AgreementRepo persists generated agreement letters.
type AgreementRepo interface {
	Create(ctx context.Context, agreement *Agreement) (*Agreement, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*Agreement, error)
	DeleteByEmployee(ctx context.Context, employeeID uuid.UUID) error
}

// SheetCodec decodes uploaded spreadsheets into raw rows and encodes the
// header-only import template workbook.
type SheetCodec interface {
	Decode(filename string, data []byte) ([][]string, error)
	EncodeTemplate(headers []string) ([]byte, error)
}
