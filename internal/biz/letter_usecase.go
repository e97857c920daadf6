package biz

import (
	"context"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// LetterUsecase generates agreement letters from employee records and keeps
// their history.
type LetterUsecase struct {
	employees  EmployeeRepo
	agreements AgreementRepo
	log        *log.Helper
}

// NewLetterUsecase creates a new letter usecase.
func NewLetterUsecase(employees EmployeeRepo, agreements AgreementRepo, logger log.Logger) *LetterUsecase {
	return &LetterUsecase{
		employees:  employees,
		agreements: agreements,
		log:        log.NewHelper(logger),
	}
}

// Generate renders the agreement for one employee, persists a history row and
// returns it. companyName overrides the configured service-provider name.
func (uc *LetterUsecase) Generate(ctx context.Context, employeeID uuid.UUID, letterType, companyName string) (*Agreement, error) {
	uc.log.WithContext(ctx).Infof("GenerateLetter: employee=%s type=%s", employeeID, letterType)

	employee, err := uc.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	content, err := RenderAgreement(uc.agreementData(employee, companyName))
	if err != nil {
		return nil, err
	}

	agreement := &Agreement{
		EmployeeID:  employee.ID,
		EmpID:       employee.EmpID,
		LetterType:  letterType,
		Content:     content,
		GeneratedOn: time.Now().UTC(),
	}

	saved, err := uc.agreements.Create(ctx, agreement)
	if err != nil {
		return nil, err
	}

	if publisher := uc.employees.GetEventPublisher(); publisher != nil {
		if err := publisher.PublishAgreementGenerated(ctx, saved); err != nil {
			uc.log.Warnf("failed to publish agreement.generated event: %v", err)
		}
	}

	return saved, nil
}

// History lists generated agreements for one employee, newest first.
func (uc *LetterUsecase) History(ctx context.Context, employeeID uuid.UUID) ([]*Agreement, error) {
	return uc.agreements.ListByEmployee(ctx, employeeID)
}

func (uc *LetterUsecase) agreementData(employee *Employee, companyName string) AgreementData {
	percentage := 0.0
	if employee.Compensation.Kind == CompensationSimple {
		percentage = employee.Compensation.Percentage
	}

	agreementDate := employee.JoiningDate
	if agreementDate == "" {
		agreementDate = time.Now().Format(DateLayout)
	}
	// A stored datetime keeps only its date part.
	if idx := strings.Index(agreementDate, " "); idx > 0 {
		agreementDate = agreementDate[:idx]
	}

	signature := employee.Signature
	if signature == "" {
		signature = DefaultSignature
	}
	sigName, sigDesignation := SplitSignature(signature)
	if sigDesignation == "" {
		sigDesignation = DefaultSigDesignation
	}

	replacement := employee.Replacement
	if replacement == "" {
		replacement = DefaultReplacementDays
	}
	invoiceDays := employee.InvoicePostJoining
	if invoiceDays == "" {
		invoiceDays = DefaultInvoiceDays
	}

	return AgreementData{
		Company:         companyName,
		CompanyUpper:    strings.ToUpper(companyName),
		PartnerName:     employee.Name,
		Percentage:      percentage,
		Address:         employee.Address,
		AgreementDate:   agreementDate,
		ReplacementDays: replacement,
		InvoiceDays:     invoiceDays,
		SigName:         sigName,
		SigDesignation:  sigDesignation,
	}
}
