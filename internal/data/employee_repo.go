package data

import (
	"context"
	"errors"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/arahhq/hr-office/internal/biz"
)

const pgUniqueViolation = "23505"

type employeeRepo struct {
	data *Data
	log  *log.Helper
}

// NewEmployeeRepo creates a new employee repository.
func NewEmployeeRepo(data *Data, logger log.Logger) biz.EmployeeRepo {
	return &employeeRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

// GetEventPublisher returns the event publisher, nil when NATS is disabled.
func (r *employeeRepo) GetEventPublisher() biz.EventPublisher {
	if r.data.publisher == nil {
		return nil
	}
	return r.data.publisher
}

// translateUnique maps postgres unique violations to domain errors by
// constraint, so an emp_id collision is distinguishable from a duplicate email.
func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		switch pgErr.ConstraintName {
		case "idx_employees_emp_id":
			return biz.ErrEmpIDConflict
		case "idx_employees_email":
			return biz.ErrEmployeeAlreadyExists
		}
	}
	return err
}

// Create inserts a new employee.
func (r *employeeRepo) Create(ctx context.Context, employee *biz.Employee) (*biz.Employee, error) {
	model := FromEntity(employee)
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}

	if err := r.data.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, translateUnique(err)
	}

	return model.ToEntity(), nil
}

// Update updates the provided fields of an existing employee.
func (r *employeeRepo) Update(ctx context.Context, employee *biz.Employee) (*biz.Employee, error) {
	model := FromEntity(employee)

	updateFields := map[string]interface{}{
		"updated_at":   time.Now(),
		"compensation": model.Compensation,
	}
	if model.Email != "" {
		updateFields["email"] = model.Email
	}
	if model.Name != "" {
		updateFields["name"] = model.Name
	}
	if model.Designation != "" {
		updateFields["designation"] = model.Designation
	}
	if model.Department != "" {
		updateFields["department"] = model.Department
	}
	if model.JoiningDate != "" {
		updateFields["joining_date"] = model.JoiningDate
	}
	if model.Location != "" {
		updateFields["location"] = model.Location
	}
	if model.EmploymentType != "" {
		updateFields["employment_type"] = model.EmploymentType
	}
	if model.Address != "" {
		updateFields["address"] = model.Address
	}
	if model.Replacement != "" {
		updateFields["replacement"] = model.Replacement
	}
	if model.InvoicePostJoining != "" {
		updateFields["invoice_post_joining"] = model.InvoicePostJoining
	}
	if model.Signature != "" {
		updateFields["signature"] = model.Signature
	}

	result := r.data.db.WithContext(ctx).
		Model(&EmployeeModel{}).
		Where("id = ?", employee.ID).
		Updates(updateFields)

	if result.Error != nil {
		return nil, translateUnique(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, biz.ErrEmployeeNotFound
	}

	return r.GetByID(ctx, employee.ID)
}

// Delete removes an employee.
func (r *employeeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.data.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&EmployeeModel{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return biz.ErrEmployeeNotFound
	}
	return nil
}

// GetByID retrieves an employee by ID, (nil, nil) when absent.
func (r *employeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*biz.Employee, error) {
	var model EmployeeModel

	err := r.data.db.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return model.ToEntity(), nil
}

// GetByEmail retrieves an employee by email, (nil, nil) when absent.
func (r *employeeRepo) GetByEmail(ctx context.Context, email string) (*biz.Employee, error) {
	var model EmployeeModel

	err := r.data.db.WithContext(ctx).
		Where("email = ?", email).
		First(&model).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return model.ToEntity(), nil
}

// List retrieves employees with pagination, newest first.
func (r *employeeRepo) List(ctx context.Context, filter *biz.ListFilter) (*biz.ListResult, error) {
	var models []EmployeeModel
	var total int64

	query := r.data.db.WithContext(ctx).Model(&EmployeeModel{})
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	if err := query.
		Offset(int(offset)).
		Limit(int(filter.PageSize)).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	employees := make([]*biz.Employee, len(models))
	for i := range models {
		employees[i] = models[i].ToEntity()
	}

	return &biz.ListResult{Employees: employees, Total: total}, nil
}

// CountAll returns the total number of employee records.
func (r *employeeRepo) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.data.db.WithContext(ctx).
		Model(&EmployeeModel{}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
