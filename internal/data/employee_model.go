package data

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arahhq/hr-office/internal/biz"
)

// CompensationColumn stores the compensation union as a JSONB document.
type CompensationColumn biz.Compensation

// Scan implements sql.Scanner.
func (c *CompensationColumn) Scan(value interface{}) error {
	if value == nil {
		*c = CompensationColumn{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported compensation column type %T", value)
	}
}

// Value implements driver.Valuer.
func (c CompensationColumn) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// EmployeeModel is the GORM model for employees.
type EmployeeModel struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primaryKey"`
	EmpID              string             `gorm:"column:emp_id;type:varchar(32);not null;uniqueIndex:idx_employees_emp_id"`
	Name               string             `gorm:"type:varchar(255);not null"`
	Email              string             `gorm:"type:varchar(255);not null;uniqueIndex:idx_employees_email"`
	Designation        string             `gorm:"type:varchar(255)"`
	Department         string             `gorm:"type:varchar(255)"`
	JoiningDate        string             `gorm:"type:varchar(10)"`
	Location           string             `gorm:"type:varchar(255)"`
	EmploymentType     string             `gorm:"type:varchar(64)"`
	Address            string             `gorm:"type:text"`
	Replacement        string             `gorm:"type:varchar(32)"`
	InvoicePostJoining string             `gorm:"type:varchar(32)"`
	Signature          string             `gorm:"type:varchar(255)"`
	Status             string             `gorm:"type:varchar(32);not null"`
	Compensation       CompensationColumn `gorm:"type:jsonb"`
	CreatedAt          time.Time          `gorm:"autoCreateTime"`
	UpdatedAt          time.Time          `gorm:"autoUpdateTime"`
}

// TableName overrides the table name.
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToEntity converts EmployeeModel to biz.Employee.
func (m *EmployeeModel) ToEntity() *biz.Employee {
	return &biz.Employee{
		ID:                 m.ID,
		EmpID:              m.EmpID,
		Name:               m.Name,
		Email:              m.Email,
		Designation:        m.Designation,
		Department:         m.Department,
		JoiningDate:        m.JoiningDate,
		Location:           m.Location,
		EmploymentType:     m.EmploymentType,
		Address:            m.Address,
		Replacement:        m.Replacement,
		InvoicePostJoining: m.InvoicePostJoining,
		Signature:          m.Signature,
		Status:             m.Status,
		Compensation:       biz.Compensation(m.Compensation),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// FromEntity converts biz.Employee to EmployeeModel.
func FromEntity(e *biz.Employee) *EmployeeModel {
	return &EmployeeModel{
		ID:                 e.ID,
		EmpID:              e.EmpID,
		Name:               e.Name,
		Email:              e.Email,
		Designation:        e.Designation,
		Department:         e.Department,
		JoiningDate:        e.JoiningDate,
		Location:           e.Location,
		EmploymentType:     e.EmploymentType,
		Address:            e.Address,
		Replacement:        e.Replacement,
		InvoicePostJoining: e.InvoicePostJoining,
		Signature:          e.Signature,
		Status:             e.Status,
		Compensation:       CompensationColumn(e.Compensation),
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

// AgreementModel is the GORM model for generated agreement letters.
type AgreementModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index:idx_agreements_employee"`
	EmpID       string    `gorm:"column:emp_id;type:varchar(32)"`
	LetterType  string    `gorm:"type:varchar(64)"`
	Content     string    `gorm:"type:text"`
	GeneratedOn time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the table name.
func (AgreementModel) TableName() string {
	return "generated_agreements"
}

// ToEntity converts AgreementModel to biz.Agreement.
func (m *AgreementModel) ToEntity() *biz.Agreement {
	return &biz.Agreement{
		ID:          m.ID,
		EmployeeID:  m.EmployeeID,
		EmpID:       m.EmpID,
		LetterType:  m.LetterType,
		Content:     m.Content,
		GeneratedOn: m.GeneratedOn,
	}
}
