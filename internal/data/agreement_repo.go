package data

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"

	"github.com/arahhq/hr-office/internal/biz"
)

type agreementRepo struct {
	data *Data
	log  *log.Helper
}

// NewAgreementRepo creates a new agreement repository.
func NewAgreementRepo(data *Data, logger log.Logger) biz.AgreementRepo {
	return &agreementRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

// Create inserts a generated agreement history row.
func (r *agreementRepo) Create(ctx context.Context, agreement *biz.Agreement) (*biz.Agreement, error) {
	model := &AgreementModel{
		ID:          agreement.ID,
		EmployeeID:  agreement.EmployeeID,
		EmpID:       agreement.EmpID,
		LetterType:  agreement.LetterType,
		Content:     agreement.Content,
		GeneratedOn: agreement.GeneratedOn,
	}
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}

	if err := r.data.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, err
	}

	return model.ToEntity(), nil
}

// ListByEmployee returns agreements for an employee, newest first.
func (r *agreementRepo) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*biz.Agreement, error) {
	var models []AgreementModel

	err := r.data.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("generated_on DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	agreements := make([]*biz.Agreement, len(models))
	for i := range models {
		agreements[i] = models[i].ToEntity()
	}
	return agreements, nil
}

// DeleteByEmployee removes all agreements for an employee (delete cascade).
func (r *agreementRepo) DeleteByEmployee(ctx context.Context, employeeID uuid.UUID) error {
	return r.data.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&AgreementModel{}).Error
}
