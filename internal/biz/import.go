package biz

import (
	"context"
	"fmt"
	"time"
)

// maxEmpIDRetries bounds the collision-retry loop for auto-assigned IDs.
const maxEmpIDRetries = 100

// ImportReport is the aggregate outcome of one bulk-import job. Errors keeps
// the per-row messages in the order the rows were encountered.
type ImportReport struct {
	ImportedCount int
	Errors        []string
}

// BulkImport runs one import job over an uploaded spreadsheet. Rows are
// processed strictly in file order; each row commits independently and a
// failed row never aborts the job. Only an unsupported file format or an
// unreadable file fails the job as a whole.
//
// Row numbers in error messages are 1-indexed spreadsheet rows counting the
// header, so the first data row reports as "Row 2". The two row-level error
// formats, "Row <n>: <reason>" and "Skipped <email>: Exists", are a
// compatibility contract with downstream consumers.
func (uc *EmployeeUsecase) BulkImport(ctx context.Context, filename string, data []byte) (*ImportReport, error) {
	rows, err := uc.sheets.Decode(filename, data)
	if err != nil {
		return nil, err
	}

	report := &ImportReport{Errors: []string{}}
	if len(rows) == 0 {
		return report, nil
	}

	// The header mapping is computed once for the whole sheet, and the
	// identity sequence snapshots the store count once at job start. The
	// emp_id unique index plus the retry below keeps concurrent writers from
	// sharing a number; in the single-writer case the observable numbering
	// stays EMP<count+1>, EMP<count+2>, ...
	columns := ResolveColumns(rows[0])
	countAtStart, err := uc.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	bumps := int64(0)

	for i, cells := range rows[1:] {
		rowNum := i + 2
		row := RowCells{Columns: columns, Cells: cells}

		email := row.Cell(FieldEmail)
		if email == "" {
			report.Errors = append(report.Errors, fmt.Sprintf("Row %d: Email missing", rowNum))
			continue
		}

		existing, err := uc.repo.GetByEmail(ctx, email)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		if existing != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Skipped %s: Exists", email))
			continue
		}

		employee := coerceImportRow(row, now)

		if employee.EmpID == "" {
			if err := uc.persistWithSequence(ctx, employee, countAtStart, int64(report.ImportedCount), &bumps); err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
				continue
			}
		} else if _, err := uc.repo.Create(ctx, employee); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}

		report.ImportedCount++
	}

	uc.log.WithContext(ctx).Infof("BulkImport: file=%s imported=%d errors=%d",
		filename, report.ImportedCount, len(report.Errors))

	if publisher := uc.repo.GetEventPublisher(); publisher != nil {
		if err := publisher.PublishEmployeesImported(ctx, report.ImportedCount, report.Errors); err != nil {
			uc.log.Warnf("failed to publish employees.imported event: %v", err)
		}
	}

	return report, nil
}

// persistWithSequence assigns the next EMP number from the job-start snapshot
// and retries past numbers already taken by concurrent writers.
func (uc *EmployeeUsecase) persistWithSequence(ctx context.Context, employee *Employee, countAtStart, imported int64, bumps *int64) error {
	for attempt := 0; attempt < maxEmpIDRetries; attempt++ {
		employee.EmpID = FormatEmpID(countAtStart + 1 + imported + *bumps)
		_, err := uc.repo.Create(ctx, employee)
		if err == nil {
			return nil
		}
		if !ErrEmpIDConflict.Is(err) {
			return err
		}
		*bumps++
	}
	return ErrEmpIDConflict
}

// coerceImportRow applies the per-field coercion rules to one data row and
// derives the compensation breakdown from the CTC cell.
func coerceImportRow(row RowCells, now time.Time) *Employee {
	joiningDate, _ := ParseJoiningDate(row.Cell(FieldJoiningDate), now)
	ctc := CoerceCTC(row.Cell(FieldCTC))

	return &Employee{
		EmpID:          row.Cell(FieldEmpID),
		Name:           CoerceString(row.Cell(FieldName), DefaultName),
		Email:          row.Cell(FieldEmail),
		Designation:    CoerceString(row.Cell(FieldDesignation), DefaultDesignation),
		Department:     CoerceString(row.Cell(FieldDepartment), DefaultDepartment),
		JoiningDate:    joiningDate,
		Location:       CoerceString(row.Cell(FieldLocation), DefaultLocation),
		EmploymentType: CoerceString(row.Cell(FieldEmploymentType), DefaultEmploymentType),
		Status:         StatusPending,
		Compensation:   DetailedCompensation(DeriveCompensation(ctc)),
	}
}

// FormatEmpID renders the human-readable sequential employee ID, zero-padded
// to three digits and widening naturally past EMP999.
func FormatEmpID(seq int64) string {
	return fmt.Sprintf("EMP%03d", seq)
}
