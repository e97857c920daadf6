package data

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/arahhq/hr-office/internal/biz"
)

// NATS subject constants for versioned event types.
const (
	SubjectEmployeeCreated    = "employees.v1.created"
	SubjectEmployeeUpdated    = "employees.v1.updated"
	SubjectEmployeeDeleted    = "employees.v1.deleted"
	SubjectEmployeesImported  = "employees.v1.imported"
	SubjectAgreementGenerated = "agreements.v1.generated"
)

// EventPublisher publishes JSON events to NATS, best-effort.
type EventPublisher struct {
	nc  *nats.Conn
	log *log.Helper
}

// NewEventPublisher creates a new event publisher.
func NewEventPublisher(nc *nats.Conn, logger log.Logger) *EventPublisher {
	return &EventPublisher{
		nc:  nc,
		log: log.NewHelper(logger),
	}
}

type employeePayload struct {
	ID             string `json:"id"`
	EmpID          string `json:"emp_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Designation    string `json:"designation"`
	Department     string `json:"department"`
	JoiningDate    string `json:"joining_date"`
	Location       string `json:"location"`
	EmploymentType string `json:"employment_type"`
	Status         string `json:"status"`
}

type employeeEvent struct {
	EventID       string           `json:"event_id"`
	EventType     string           `json:"event_type"`
	Timestamp     time.Time        `json:"timestamp"`
	Employee      *employeePayload `json:"employee,omitempty"`
	UpdatedFields []string         `json:"updated_fields,omitempty"`
	ImportedCount int              `json:"imported_count,omitempty"`
	RowErrors     []string         `json:"row_errors,omitempty"`
	AgreementID   string           `json:"agreement_id,omitempty"`
	LetterType    string           `json:"letter_type,omitempty"`
}

func toEmployeePayload(e *biz.Employee) *employeePayload {
	if e == nil {
		return nil
	}
	return &employeePayload{
		ID:             e.ID.String(),
		EmpID:          e.EmpID,
		Name:           e.Name,
		Email:          e.Email,
		Designation:    e.Designation,
		Department:     e.Department,
		JoiningDate:    e.JoiningDate,
		Location:       e.Location,
		EmploymentType: e.EmploymentType,
		Status:         e.Status,
	}
}

// PublishEmployeeCreated publishes an employee created event.
func (p *EventPublisher) PublishEmployeeCreated(ctx context.Context, employee *biz.Employee) error {
	return p.publish(SubjectEmployeeCreated, &employeeEvent{
		EventID:   uuid.New().String(),
		EventType: "created",
		Timestamp: time.Now().UTC(),
		Employee:  toEmployeePayload(employee),
	})
}

// PublishEmployeeUpdated publishes an employee updated event.
func (p *EventPublisher) PublishEmployeeUpdated(ctx context.Context, employee *biz.Employee, updatedFields []string) error {
	if updatedFields == nil {
		updatedFields = []string{}
	}
	return p.publish(SubjectEmployeeUpdated, &employeeEvent{
		EventID:       uuid.New().String(),
		EventType:     "updated",
		Timestamp:     time.Now().UTC(),
		Employee:      toEmployeePayload(employee),
		UpdatedFields: updatedFields,
	})
}

// PublishEmployeeDeleted publishes an employee deleted event.
func (p *EventPublisher) PublishEmployeeDeleted(ctx context.Context, employee *biz.Employee) error {
	return p.publish(SubjectEmployeeDeleted, &employeeEvent{
		EventID:   uuid.New().String(),
		EventType: "deleted",
		Timestamp: time.Now().UTC(),
		Employee:  toEmployeePayload(employee),
	})
}

// PublishEmployeesImported publishes the summary of one bulk-import job.
func (p *EventPublisher) PublishEmployeesImported(ctx context.Context, importedCount int, rowErrors []string) error {
	if rowErrors == nil {
		rowErrors = []string{}
	}
	return p.publish(SubjectEmployeesImported, &employeeEvent{
		EventID:       uuid.New().String(),
		EventType:     "imported",
		Timestamp:     time.Now().UTC(),
		ImportedCount: importedCount,
		RowErrors:     rowErrors,
	})
}

// PublishAgreementGenerated publishes an agreement generated event.
func (p *EventPublisher) PublishAgreementGenerated(ctx context.Context, agreement *biz.Agreement) error {
	return p.publish(SubjectAgreementGenerated, &employeeEvent{
		EventID:     uuid.New().String(),
		EventType:   "agreement_generated",
		Timestamp:   time.Now().UTC(),
		AgreementID: agreement.ID.String(),
		LetterType:  agreement.LetterType,
		Employee:    &employeePayload{ID: agreement.EmployeeID.String(), EmpID: agreement.EmpID},
	})
}

func (p *EventPublisher) publish(subject string, event *employeeEvent) error {
	if p == nil || p.nc == nil {
		// NATS not configured, skip publishing
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.log.Errorf("failed to marshal event: %v", err)
		return err
	}

	if err := p.nc.Publish(subject, data); err != nil {
		p.log.Errorf("failed to publish event to NATS subject %s: %v", subject, err)
		return err
	}

	p.log.Infof("published event to subject: %s", subject)
	return nil
}
