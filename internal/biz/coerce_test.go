package biz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRowCellsCell(t *testing.T) {
	row := RowCells{
		Columns: map[string]int{FieldEmail: 0, FieldName: 1, FieldCTC: 5},
		Cells:   []string{" a@b.com ", "Jane"},
	}

	assert.Equal(t, "a@b.com", row.Cell(FieldEmail))
	assert.Equal(t, "Jane", row.Cell(FieldName))
	// Column resolved but the row is too short.
	assert.Equal(t, "", row.Cell(FieldCTC))
	// Field never resolved.
	assert.Equal(t, "", row.Cell(FieldDepartment))
}

func TestCoerceString(t *testing.T) {
	assert.Equal(t, "Jane", CoerceString("Jane", DefaultName))
	assert.Equal(t, DefaultName, CoerceString("", DefaultName))
	assert.Equal(t, DefaultDepartment, CoerceString("", DefaultDepartment))
}

func TestParseJoiningDate(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	today := "2026-03-15"

	tests := []struct {
		name       string
		raw        string
		want       string
		wantParsed bool
	}{
		{"iso date", "2024-06-01", "2024-06-01", true},
		{"slash date", "2024/06/01", "2024-06-01", true},
		{"day first", "01-06-2024", "2024-06-01", true},
		{"datetime keeps date part", "2024-06-01 09:30:00", "2024-06-01", true},
		{"excel serial", "45444", "2024-06-01", true},
		{"numeric below serial range", "1999", today, false},
		{"blank falls back to today", "", today, false},
		{"garbage falls back to today", "soon", today, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, parsed := ParseJoiningDate(tt.raw, now)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantParsed, parsed)
		})
	}
}

func TestCoerceCTC(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"600000", 600000},
		{"6,00,000", 600000},
		{"1200000.50", 1200000.50},
		{" 450000 ", 450000},
		{"", 0},
		{"N/A", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CoerceCTC(tt.raw), "raw=%q", tt.raw)
	}
}
