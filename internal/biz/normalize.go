package biz

import "strings"

// Canonical import field names. Every spreadsheet column resolves to one of
// these (or none) via the alias table below.
const (
	FieldEmpID          = "emp_id"
	FieldName           = "name"
	FieldEmail          = "email"
	FieldDesignation    = "designation"
	FieldDepartment     = "department"
	FieldJoiningDate    = "joining_date"
	FieldLocation       = "location"
	FieldEmploymentType = "employment_type"
	FieldCTC            = "ctc"
)

// fieldAliases maps each canonical field to its accepted header spellings, in
// priority order. The first alias present among the normalized headers wins.
var fieldAliases = []struct {
	field   string
	aliases []string
}{
	{FieldEmpID, []string{"emp_id"}},
	{FieldName, []string{"name", "full_name"}},
	{FieldEmail, []string{"email", "email_id", "email_address"}},
	{FieldDesignation, []string{"designation", "role"}},
	{FieldDepartment, []string{"department"}},
	{FieldJoiningDate, []string{"joining_date", "doj"}},
	{FieldLocation, []string{"location"}},
	{FieldEmploymentType, []string{"employment_type"}},
	{FieldCTC, []string{"ctc", "annual_ctc"}},
}

// TemplateHeaders are the human-facing column labels shipped in the
// downloadable import template. Not every label resolves to an alias:
// "Employee ID" intentionally misses the emp_id alias so template users get
// auto-assigned IDs, and "Basic Salary" is derived, never read.
var TemplateHeaders = []string{
	"Employee ID", "Full Name", "Email Address", "Designation",
	"Department", "Joining Date", "Location", "Employment Type",
	"Annual CTC", "Basic Salary",
}

// NormalizeHeader lower-cases, trims, and replaces internal whitespace with
// underscores so "  Email Address " matches the "email_address" alias.
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "\t", "_")
	return h
}

// ResolveColumns maps canonical field names to column indexes for one header
// row. The mapping is computed once per import; fields with no matching alias
// are absent for every row of the sheet.
func ResolveColumns(headers []string) map[string]int {
	byAlias := make(map[string]int, len(headers))
	for i, h := range headers {
		n := NormalizeHeader(h)
		if _, seen := byAlias[n]; !seen {
			byAlias[n] = i
		}
	}

	columns := make(map[string]int, len(fieldAliases))
	for _, fa := range fieldAliases {
		for _, alias := range fa.aliases {
			if idx, ok := byAlias[alias]; ok {
				columns[fa.field] = idx
				break
			}
		}
	}
	return columns
}
