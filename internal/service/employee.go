package service

import (
	"io"
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"

	"github.com/arahhq/hr-office/internal/biz"
	"github.com/arahhq/hr-office/internal/conf"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EmployeeService exposes the employee HTTP API.
type EmployeeService struct {
	uc             *biz.EmployeeUsecase
	maxUploadBytes int64
	log            *log.Helper
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(uc *biz.EmployeeUsecase, docs *conf.Documents, logger log.Logger) *EmployeeService {
	var maxUpload int64
	if docs != nil {
		maxUpload = docs.MaxUploadBytes
	}
	return &EmployeeService{
		uc:             uc,
		maxUploadBytes: maxUpload,
		log:            log.NewHelper(logger),
	}
}

// EmployeeReply is the JSON representation of one employee record.
type EmployeeReply struct {
	ID                 string           `json:"id"`
	EmpID              string           `json:"emp_id"`
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Designation        string           `json:"designation"`
	Department         string           `json:"department"`
	JoiningDate        string           `json:"joining_date"`
	Location           string           `json:"location"`
	EmploymentType     string           `json:"employment_type"`
	Address            string           `json:"address,omitempty"`
	Replacement        string           `json:"replacement,omitempty"`
	InvoicePostJoining string           `json:"invoice_post_joining,omitempty"`
	Signature          string           `json:"signature,omitempty"`
	Status             string           `json:"status"`
	Compensation       biz.Compensation `json:"compensation"`
	CreatedAt          time.Time        `json:"created_at"`
}

// CreateEmployeeRequest carries one manual employee entry. Percentage feeds
// the simple compensation shape.
type CreateEmployeeRequest struct {
	EmpID              string  `json:"emp_id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Designation        string  `json:"designation"`
	Department         string  `json:"department"`
	JoiningDate        string  `json:"joining_date"`
	Location           string  `json:"location"`
	EmploymentType     string  `json:"employment_type"`
	Address            string  `json:"address"`
	Replacement        string  `json:"replacement"`
	InvoicePostJoining string  `json:"invoice_post_joining"`
	Signature          string  `json:"signature"`
	Percentage         float64 `json:"percentage"`
}

// ListEmployeesReply is a paginated employee listing.
type ListEmployeesReply struct {
	Employees []*EmployeeReply `json:"employees"`
	Total     int64            `json:"total"`
	Page      int32            `json:"page"`
	PageSize  int32            `json:"page_size"`
}

// UploadReply is the bulk-import summary. Errors preserves row order.
type UploadReply struct {
	Status        string   `json:"status"`
	ImportedCount int      `json:"imported_count"`
	Errors        []string `json:"errors"`
}

func toEmployeeReply(e *biz.Employee) *EmployeeReply {
	if e == nil {
		return nil
	}
	return &EmployeeReply{
		ID:                 e.ID.String(),
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
		Compensation:       e.Compensation,
		CreatedAt:          e.CreatedAt,
	}
}

func (req *CreateEmployeeRequest) toEntity() *biz.Employee {
	location := req.Location
	if location == "" {
		location = biz.DefaultLocation
	}
	employmentType := req.EmploymentType
	if employmentType == "" {
		employmentType = biz.DefaultEmploymentType
	}
	return &biz.Employee{
		EmpID:              req.EmpID,
		Name:               req.Name,
		Email:              req.Email,
		Designation:        req.Designation,
		Department:         req.Department,
		JoiningDate:        req.JoiningDate,
		Location:           location,
		EmploymentType:     employmentType,
		Address:            req.Address,
		Replacement:        req.Replacement,
		InvoicePostJoining: req.InvoicePostJoining,
		Signature:          req.Signature,
		Compensation:       biz.SimpleCompensation(req.Percentage),
	}
}

// Create handles POST /employees.
func (s *EmployeeService) Create(ctx http.Context) error {
	var req CreateEmployeeRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	created, err := s.uc.CreateEmployee(ctx, req.toEntity())
	if err != nil {
		return err
	}
	return ctx.Result(nethttp.StatusOK, toEmployeeReply(created))
}

// List handles GET /employees.
func (s *EmployeeService) List(ctx http.Context) error {
	var q struct {
		Page     int32 `json:"page"`
		PageSize int32 `json:"page_size"`
	}
	if err := ctx.BindQuery(&q); err != nil {
		return err
	}

	filter := &biz.ListFilter{Page: q.Page, PageSize: q.PageSize}
	result, err := s.uc.ListEmployees(ctx, filter)
	if err != nil {
		return err
	}

	employees := make([]*EmployeeReply, len(result.Employees))
	for i, e := range result.Employees {
		employees[i] = toEmployeeReply(e)
	}
	return ctx.Result(nethttp.StatusOK, &ListEmployeesReply{
		Employees: employees,
		Total:     result.Total,
		Page:      filter.Page,
		PageSize:  filter.PageSize,
	})
}

// Get handles GET /employees/{id}.
func (s *EmployeeService) Get(ctx http.Context) error {
	id, err := uuid.Parse(ctx.Vars().Get("id"))
	if err != nil {
		return biz.ErrInvalidEmployeeID
	}

	employee, err := s.uc.GetEmployee(ctx, id)
	if err != nil {
		return err
	}
	return ctx.Result(nethttp.StatusOK, toEmployeeReply(employee))
}

// Update handles PUT /employees/{id}.
func (s *EmployeeService) Update(ctx http.Context) error {
	id, err := uuid.Parse(ctx.Vars().Get("id"))
	if err != nil {
		return biz.ErrInvalidEmployeeID
	}

	var req CreateEmployeeRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	employee := req.toEntity()
	employee.ID = id

	updated, err := s.uc.UpdateEmployee(ctx, employee)
	if err != nil {
		return err
	}
	return ctx.Result(nethttp.StatusOK, toEmployeeReply(updated))
}

// Delete handles DELETE /employees/{id}.
func (s *EmployeeService) Delete(ctx http.Context) error {
	id, err := uuid.Parse(ctx.Vars().Get("id"))
	if err != nil {
		return biz.ErrInvalidEmployeeID
	}

	if err := s.uc.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	return ctx.String(nethttp.StatusNoContent, "")
}

// BulkUpload handles POST /employees/upload: one spreadsheet per request.
func (s *EmployeeService) BulkUpload(ctx http.Context) error {
	req := ctx.Request()
	if s.maxUploadBytes > 0 {
		req.Body = nethttp.MaxBytesReader(ctx.Response(), req.Body, s.maxUploadBytes)
	}

	file, header, err := req.FormFile("file")
	if err != nil {
		return errors.BadRequest("INVALID_UPLOAD", "missing file field").WithCause(err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.BadRequest("INVALID_UPLOAD", "unreadable upload").WithCause(err)
	}

	report, err := s.uc.BulkImport(ctx, header.Filename, data)
	if err != nil {
		return err
	}
	return ctx.Result(nethttp.StatusOK, &UploadReply{
		Status:        "success",
		ImportedCount: report.ImportedCount,
		Errors:        report.Errors,
	})
}

// DownloadTemplate handles GET /employees/template with a stable, header-only
// workbook for preparing bulk-import files.
func (s *EmployeeService) DownloadTemplate(ctx http.Context) error {
	data, err := s.uc.TemplateWorkbook()
	if err != nil {
		return err
	}

	ctx.Response().Header().Set("Content-Disposition", "attachment; filename=Employee_Import_Template.xlsx")
	return ctx.Blob(nethttp.StatusOK, xlsxContentType, data)
}
