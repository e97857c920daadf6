package service

import (
	"bytes"
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"

	"github.com/arahhq/hr-office/internal/biz"
	"github.com/arahhq/hr-office/internal/conf"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// LetterService exposes agreement letter generation and download.
type LetterService struct {
	uc          *biz.LetterUsecase
	companyName string
	log         *log.Helper
}

// NewLetterService creates a new letter service.
func NewLetterService(uc *biz.LetterUsecase, docs *conf.Documents, logger log.Logger) *LetterService {
	companyName := ""
	if docs != nil {
		companyName = docs.CompanyName
	}
	return &LetterService{
		uc:          uc,
		companyName: companyName,
		log:         log.NewHelper(logger),
	}
}

// GenerateLetterRequest asks for one agreement letter.
type GenerateLetterRequest struct {
	EmployeeID  string `json:"employee_id"`
	LetterType  string `json:"letter_type"`
	CompanyName string `json:"company_name"`
}

// LetterReply returns the rendered agreement HTML.
type LetterReply struct {
	Content  string  `json:"content"`
	FilePath *string `json:"file_path"`
}

// AgreementReply is one history entry.
type AgreementReply struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	EmpID       string    `json:"emp_id"`
	LetterType  string    `json:"letter_type"`
	GeneratedOn time.Time `json:"generated_on"`
}

// Generate handles POST /letters/generate.
func (s *LetterService) Generate(ctx http.Context) error {
	var req GenerateLetterRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return biz.ErrInvalidEmployeeID
	}

	companyName := req.CompanyName
	if companyName == "" {
		companyName = s.companyName
	}

	agreement, err := s.uc.Generate(ctx, employeeID, req.LetterType, companyName)
	if err != nil {
		return err
	}
	return ctx.Result(nethttp.StatusOK, &LetterReply{Content: agreement.Content})
}

// History handles GET /letters/history/{employee_id}.
func (s *LetterService) History(ctx http.Context) error {
	employeeID, err := uuid.Parse(ctx.Vars().Get("employee_id"))
	if err != nil {
		return biz.ErrInvalidEmployeeID
	}

	agreements, err := s.uc.History(ctx, employeeID)
	if err != nil {
		return err
	}

	replies := make([]*AgreementReply, len(agreements))
	for i, a := range agreements {
		replies[i] = &AgreementReply{
			ID:          a.ID.String(),
			EmployeeID:  a.EmployeeID.String(),
			EmpID:       a.EmpID,
			LetterType:  a.LetterType,
			GeneratedOn: a.GeneratedOn,
		}
	}
	return ctx.Result(nethttp.StatusOK, replies)
}

// DownloadDocxRequest carries the HTML to convert.
type DownloadDocxRequest struct {
	HTMLContent string `json:"html_content"`
}

// DownloadDocx handles POST /letters/download-docx: wraps the posted HTML in
// a Word-compatible envelope and returns it as an attachment.
func (s *LetterService) DownloadDocx(ctx http.Context) error {
	var req DownloadDocxRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if req.HTMLContent == "" {
		return errors.BadRequest("EMPTY_CONTENT", "html_content is required")
	}

	ctx.Response().Header().Set("Content-Disposition", "attachment; filename=Agreement.docx")
	return ctx.Blob(nethttp.StatusOK, docxContentType, wrapWordHTML(req.HTMLContent))
}

// wrapWordHTML produces the office-HTML envelope Word opens as a document.
func wrapWordHTML(content string) []byte {
	var b bytes.Buffer
	b.WriteString(`<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:w="urn:schemas-microsoft-com:office:word" xmlns="http://www.w3.org/TR/REC-html40">`)
	b.WriteString(`<head><meta charset="utf-8"><!--[if gte mso 9]><xml><w:WordDocument><w:View>Print</w:View></w:WordDocument></xml><![endif]--></head><body>`)
	b.WriteString(content)
	b.WriteString(`</body></html>`)
	return b.Bytes()
}
