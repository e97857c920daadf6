package biz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Email", "email"},
		{"  Email Address ", "email_address"},
		{"FULL NAME", "full_name"},
		{"Joining\tDate", "joining_date"},
		{"annual_ctc", "annual_ctc"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeHeader(tt.in))
	}
}

func TestResolveColumns(t *testing.T) {
	t.Run("template headers resolve to canonical fields", func(t *testing.T) {
		columns := ResolveColumns(TemplateHeaders)

		assert.Equal(t, 1, columns[FieldName])
		assert.Equal(t, 2, columns[FieldEmail])
		assert.Equal(t, 3, columns[FieldDesignation])
		assert.Equal(t, 4, columns[FieldDepartment])
		assert.Equal(t, 5, columns[FieldJoiningDate])
		assert.Equal(t, 6, columns[FieldLocation])
		assert.Equal(t, 7, columns[FieldEmploymentType])
		assert.Equal(t, 8, columns[FieldCTC])

		// "Employee ID" is not an emp_id alias; template users get
		// auto-assigned IDs.
		_, ok := columns[FieldEmpID]
		assert.False(t, ok)
	})

	t.Run("alias priority prefers the earlier spelling", func(t *testing.T) {
		columns := ResolveColumns([]string{"email_address", "email"})
		assert.Equal(t, 1, columns[FieldEmail])
	})

	t.Run("alternate spellings resolve", func(t *testing.T) {
		columns := ResolveColumns([]string{"emp_id", "Role", "DOJ", "Annual CTC", "Email ID"})

		assert.Equal(t, 0, columns[FieldEmpID])
		assert.Equal(t, 1, columns[FieldDesignation])
		assert.Equal(t, 2, columns[FieldJoiningDate])
		assert.Equal(t, 3, columns[FieldCTC])
		assert.Equal(t, 4, columns[FieldEmail])
	})

	t.Run("duplicate headers keep the first occurrence", func(t *testing.T) {
		columns := ResolveColumns([]string{"email", "email"})
		assert.Equal(t, 0, columns[FieldEmail])
	})

	t.Run("unknown headers resolve to nothing", func(t *testing.T) {
		columns := ResolveColumns([]string{"foo", "bar"})
		assert.Empty(t, columns)
	})
}
