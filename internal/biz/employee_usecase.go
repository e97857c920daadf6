package biz

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// EmployeeUsecase is the employee usecase: manual CRUD, bulk import and the
// import template.
type EmployeeUsecase struct {
	repo       EmployeeRepo
	agreements AgreementRepo
	sheets     SheetCodec
	log        *log.Helper
}

// NewEmployeeUsecase creates a new employee usecase.
func NewEmployeeUsecase(repo EmployeeRepo, agreements AgreementRepo, sheets SheetCodec, logger log.Logger) *EmployeeUsecase {
	return &EmployeeUsecase{
		repo:       repo,
		agreements: agreements,
		sheets:     sheets,
		log:        log.NewHelper(logger),
	}
}

// CreateEmployee creates a single employee after checking email uniqueness.
// A blank EmpID is auto-assigned from the store count, retrying on collision.
func (uc *EmployeeUsecase) CreateEmployee(ctx context.Context, employee *Employee) (*Employee, error) {
	uc.log.WithContext(ctx).Infof("CreateEmployee: email=%s", employee.Email)

	if employee.Email != "" {
		existing, err := uc.repo.GetByEmail(ctx, employee.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmployeeAlreadyExists
		}
	}

	employee.Status = StatusPending
	if employee.Compensation.Kind == "" {
		employee.Compensation = SimpleCompensation(0)
	}

	created, err := uc.createWithEmpID(ctx, employee, 0)
	if err != nil {
		return nil, err
	}

	if publisher := uc.repo.GetEventPublisher(); publisher != nil {
		if err := publisher.PublishEmployeeCreated(ctx, created); err != nil {
			uc.log.Warnf("failed to publish employee.created event: %v", err)
		}
	}

	return created, nil
}

// createWithEmpID persists an employee, assigning the next EMP number when no
// ID was supplied. importedSoFar offsets the sequence during bulk jobs. The
// unique index on emp_id backs a retry loop so concurrent writers cannot
// silently share a number.
func (uc *EmployeeUsecase) createWithEmpID(ctx context.Context, employee *Employee, importedSoFar int) (*Employee, error) {
	if employee.EmpID != "" {
		return uc.repo.Create(ctx, employee)
	}

	count, err := uc.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	seq := count + 1 + int64(importedSoFar)
	for attempt := 0; attempt < maxEmpIDRetries; attempt++ {
		employee.EmpID = FormatEmpID(seq)
		created, err := uc.repo.Create(ctx, employee)
		if err == nil {
			return created, nil
		}
		if !ErrEmpIDConflict.Is(err) {
			return nil, err
		}
		seq++
	}
	return nil, ErrEmpIDConflict
}

// UpdateEmployee updates an existing employee. A changed simple-compensation
// percentage swaps the whole compensation value.
func (uc *EmployeeUsecase) UpdateEmployee(ctx context.Context, employee *Employee) (*Employee, error) {
	uc.log.WithContext(ctx).Infof("UpdateEmployee: id=%s", employee.ID)

	existing, err := uc.repo.GetByID(ctx, employee.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrEmployeeNotFound
	}

	if employee.Email != "" && employee.Email != existing.Email {
		other, err := uc.repo.GetByEmail(ctx, employee.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, ErrEmployeeAlreadyExists
		}
	}

	updatedFields := []string{}
	if employee.Email != "" && employee.Email != existing.Email {
		updatedFields = append(updatedFields, "email")
	}
	if employee.Name != "" && employee.Name != existing.Name {
		updatedFields = append(updatedFields, "name")
	}
	if employee.Designation != "" && employee.Designation != existing.Designation {
		updatedFields = append(updatedFields, "designation")
	}
	if employee.Department != "" && employee.Department != existing.Department {
		updatedFields = append(updatedFields, "department")
	}
	if employee.Compensation.Kind != "" && !employee.Compensation.Equal(existing.Compensation) {
		updatedFields = append(updatedFields, "compensation")
	} else {
		employee.Compensation = existing.Compensation
	}

	updated, err := uc.repo.Update(ctx, employee)
	if err != nil {
		return nil, err
	}

	if publisher := uc.repo.GetEventPublisher(); publisher != nil {
		if err := publisher.PublishEmployeeUpdated(ctx, updated, updatedFields); err != nil {
			uc.log.Warnf("failed to publish employee.updated event: %v", err)
		}
	}

	return updated, nil
}

// DeleteEmployee deletes an employee and cascades to its generated agreements.
func (uc *EmployeeUsecase) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	uc.log.WithContext(ctx).Infof("DeleteEmployee: id=%s", id)

	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrEmployeeNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := uc.agreements.DeleteByEmployee(ctx, id); err != nil {
		uc.log.Warnf("failed to cascade agreement delete for %s: %v", id, err)
	}

	if publisher := uc.repo.GetEventPublisher(); publisher != nil {
		if err := publisher.PublishEmployeeDeleted(ctx, existing); err != nil {
			uc.log.Warnf("failed to publish employee.deleted event: %v", err)
		}
	}

	return nil
}

// GetEmployee gets an employee by ID.
func (uc *EmployeeUsecase) GetEmployee(ctx context.Context, id uuid.UUID) (*Employee, error) {
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	return employee, nil
}

// ListEmployees lists employees with pagination.
func (uc *EmployeeUsecase) ListEmployees(ctx context.Context, filter *ListFilter) (*ListResult, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}
	return uc.repo.List(ctx, filter)
}

// TemplateWorkbook returns the header-only xlsx users fill in for bulk import.
func (uc *EmployeeUsecase) TemplateWorkbook() ([]byte, error) {
	return uc.sheets.EncodeTemplate(TemplateHeaders)
}
