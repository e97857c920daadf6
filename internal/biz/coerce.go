package biz

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Fallback defaults applied when an import cell is missing or blank.
const (
	DefaultName           = "Unknown"
	DefaultDesignation    = "TBD"
	DefaultDepartment     = "General"
	DefaultLocation       = "Remote"
	DefaultEmploymentType = "Full Time"
)

// DateLayout is the canonical joining-date representation.
const DateLayout = "2006-01-02"

// joiningDateLayouts are tried in order when parsing a joining-date cell.
var joiningDateLayouts = []string{
	DateLayout,
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"01/02/2006",
	"1/2/2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// RowCells reads one data row through the column mapping produced by
// ResolveColumns. Unresolved fields and short rows read as empty cells.
type RowCells struct {
	Columns map[string]int
	Cells   []string
}

// Cell returns the trimmed raw value for a canonical field, or "" when the
// field did not resolve or the row is too short.
func (r RowCells) Cell(field string) string {
	idx, ok := r.Columns[field]
	if !ok || idx < 0 || idx >= len(r.Cells) {
		return ""
	}
	return strings.TrimSpace(r.Cells[idx])
}

// CoerceString returns the raw value or the fallback when it is blank.
func CoerceString(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	return raw
}

// ParseJoiningDate coerces a joining-date cell to YYYY-MM-DD. The second
// return reports whether the cell parsed; on false the caller gets the
// current date, keeping "intentional default" distinct from a parse failure.
func ParseJoiningDate(raw string, now time.Time) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.Format(DateLayout), false
	}

	// Excel exports frequently hold dates as numeric serials. The range guard
	// keeps plain years and IDs from being misread as serials.
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if serial >= 20000 && serial <= 80000 {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return t.Format(DateLayout), true
			}
		}
		return now.Format(DateLayout), false
	}

	for _, layout := range joiningDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(DateLayout), true
		}
	}
	return now.Format(DateLayout), false
}

// CoerceCTC parses a numeric CTC cell, tolerating thousands separators and
// currency-free formatting. Missing or unparseable values coerce to 0.
func CoerceCTC(raw string) float64 {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
