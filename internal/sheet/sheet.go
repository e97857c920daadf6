// Package sheet decodes uploaded spreadsheets into raw string rows and
// encodes the downloadable import template workbook.
package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/arahhq/hr-office/internal/biz"
)

// DefaultMaxRows bounds how many rows one import may carry, header included.
const DefaultMaxRows = 5000

// Codec implements biz.SheetCodec for .xlsx and .csv files.
type Codec struct {
	// MaxRows caps decoded rows to keep one upload from exhausting memory.
	MaxRows int
}

// NewCodec creates a codec with the default row bound.
func NewCodec() *Codec {
	return &Codec{MaxRows: DefaultMaxRows}
}

// Decode parses file bytes into rows. The format is chosen by filename
// extension only; anything other than .xlsx or .csv fails the whole job.
func (c *Codec) Decode(filename string, data []byte) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return c.decodeXLSX(data)
	case ".csv":
		return c.decodeCSV(data)
	default:
		return nil, biz.ErrUnsupportedFormat
	}
}

func (c *Codec) decodeXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, biz.ErrUnsupportedFormat.WithCause(err)
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, biz.ErrUnsupportedFormat
	}

	iter, err := f.Rows(sheetName)
	if err != nil {
		return nil, err
	}
	defer func() { _ = iter.Close() }()

	var rows [][]string
	for iter.Next() {
		if len(rows) >= c.maxRows() {
			return nil, biz.ErrSheetTooLarge
		}
		cells, err := iter.Columns()
		if err != nil {
			return nil, err
		}
		rows = append(rows, cells)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Codec) decodeCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		if len(rows) >= c.maxRows() {
			return nil, biz.ErrSheetTooLarge
		}
		rows = append(rows, record)
	}
}

// EncodeTemplate produces a single-sheet workbook holding only the given
// header labels. The output is stable across calls.
func (c *Codec) EncodeTemplate(headers []string) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := f.SetSheetRow("Sheet1", "A1", &row); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Codec) maxRows() int {
	if c.MaxRows > 0 {
		return c.MaxRows
	}
	return DefaultMaxRows
}
