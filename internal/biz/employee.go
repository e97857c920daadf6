package biz

import (
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/google/uuid"
)

var (
	// ErrEmployeeNotFound is employee not found.
	ErrEmployeeNotFound = errors.NotFound("EMPLOYEE_NOT_FOUND", "employee not found")
	// ErrEmployeeAlreadyExists is a duplicate email.
	ErrEmployeeAlreadyExists = errors.BadRequest("EMPLOYEE_ALREADY_EXISTS", "email already registered")
	// ErrEmpIDConflict is a human-readable employee ID collision.
	ErrEmpIDConflict = errors.Conflict("EMP_ID_CONFLICT", "employee ID already assigned")
	// ErrInvalidEmployeeID is an unparseable record identifier.
	ErrInvalidEmployeeID = errors.BadRequest("INVALID_EMPLOYEE_ID", "invalid employee ID format")
	// ErrUnsupportedFormat is an upload with an extension other than .xlsx/.csv.
	ErrUnsupportedFormat = errors.BadRequest("UNSUPPORTED_FORMAT", "invalid file format")
	// ErrSheetTooLarge is an upload exceeding the row bound.
	ErrSheetTooLarge = errors.BadRequest("SHEET_TOO_LARGE", "spreadsheet exceeds the row limit")
	// ErrAgreementNotFound is agreement not found.
	ErrAgreementNotFound = errors.NotFound("AGREEMENT_NOT_FOUND", "agreement not found")
)

// StatusPending is the only lifecycle status this service ever assigns.
// Transitions beyond it are owned by downstream systems.
const StatusPending = "Pending"

// CompensationKind discriminates the two compensation shapes.
type CompensationKind string

const (
	// CompensationSimple carries only a placement percentage (manual entry path).
	CompensationSimple CompensationKind = "simple"
	// CompensationDetailed carries a full payroll breakdown (bulk-import path).
	CompensationDetailed CompensationKind = "detailed"
)

// PayrollBreakdown is the derived compensation split for one annual CTC figure.
type PayrollBreakdown struct {
	CTC         float64 `json:"ctc"`
	BasicSalary float64 `json:"basic_salary"`
	HRA         float64 `json:"hra"`
	Allowances  float64 `json:"allowances"`
	Deductions  float64 `json:"deductions"`
	NetSalary   float64 `json:"net_salary"`
}

// Compensation is a tagged union over the simple and detailed shapes.
type Compensation struct {
	Kind       CompensationKind  `json:"kind"`
	Percentage float64           `json:"percentage,omitempty"`
	Breakdown  *PayrollBreakdown `json:"breakdown,omitempty"`
}

// SimpleCompensation builds the manual-entry shape.
func SimpleCompensation(percentage float64) Compensation {
	return Compensation{Kind: CompensationSimple, Percentage: percentage}
}

// DetailedCompensation builds the bulk-import shape.
func DetailedCompensation(b PayrollBreakdown) Compensation {
	return Compensation{Kind: CompensationDetailed, Breakdown: &b}
}

// Equal reports whether two compensations are the same for update detection.
func (c Compensation) Equal(o Compensation) bool {
	if c.Kind != o.Kind {
		return false
	}
	switch c.Kind {
	case CompensationSimple:
		return c.Percentage == o.Percentage
	case CompensationDetailed:
		if c.Breakdown == nil || o.Breakdown == nil {
			return c.Breakdown == o.Breakdown
		}
		return *c.Breakdown == *o.Breakdown
	}
	return true
}

// Employee is the employee domain model.
type Employee struct {
	ID                 uuid.UUID
	EmpID              string
	Name               string
	Email              string
	Designation        string
	Department         string
	JoiningDate        string // calendar date, YYYY-MM-DD
	Location           string
	EmploymentType     string
	Address            string
	Replacement        string
	InvoicePostJoining string
	Signature          string
	Status             string
	Compensation       Compensation
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ListFilter represents pagination options for listing employees.
type ListFilter struct {
	Page     int32
	PageSize int32
}

// ListResult represents a paginated list result.
type ListResult struct {
	Employees []*Employee
	Total     int64
}

// Agreement is one generated legal letter tied to an employee.
type Agreement struct {
	ID          uuid.UUID
	EmployeeID  uuid.UUID
	EmpID       string
	LetterType  string
	Content     string
	GeneratedOn time.Time
}
