package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field holds a raw exported value. Exports mix quoted and bare numbers,
// booleans and nulls, so everything is kept as text until it is mapped
// onto a column.
type Field string

func (f *Field) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Field(s)
		return nil
	}
	// numbers and booleans keep their literal text
	*f = Field(b)
	return nil
}

func (f *Field) UnmarshalCSV(s string) error {
	*f = Field(s)
	return nil
}

func (f Field) blank() bool {
	s := strings.TrimSpace(string(f))
	return s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "none")
}

// Text returns nil for blank values.
func (f Field) Text() *string {
	if f.blank() {
		return nil
	}
	s := strings.TrimSpace(string(f))
	return &s
}

// Amount parses a numeric value such as "1,25,000.50". Blank values are
// zero.
func (f Field) Amount() (*float64, error) {
	if f.blank() {
		zero := 0.0
		return &zero, nil
	}
	return f.Float()
}

// Float is like Amount but leaves blank values nil. NaN and infinities
// are treated as absent.
func (f Field) Float() (*float64, error) {
	if f.blank() {
		return nil, nil
	}
	v, err := strconv.ParseFloat(cleanNumeric(string(f)), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", string(f), err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, nil
	}
	return &v, nil
}

// Count parses an integer, treating blank values as zero.
func (f Field) Count() (*int32, error) {
	v, err := f.Amount()
	if err != nil {
		return nil, err
	}
	if v == nil || *v != math.Trunc(*v) || math.Abs(*v) > math.MaxInt32 {
		return nil, fmt.Errorf("invalid integer %q", string(f))
	}
	out := int32(*v)
	return &out, nil
}

func cleanNumeric(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", "")
}
