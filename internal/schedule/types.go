package schedule

import (
	"time"
)

// DateLayout is how date values render outside the workbook
const DateLayout = "2006-01-02"

// Kind tells whether a field holds free text or a calendar date
type Kind int

const (
	KindText Kind = iota
	KindDate
)

// Field describes one column of the schedule sheet
type Field struct {
	Key     string
	Header  string
	Kind    Kind
	Width   float64
	Aliases []string
}

// Value is either free text or a calendar date
type Value struct {
	text   string
	date   time.Time
	isDate bool
}

// Text wraps a string value
func Text(s string) Value {
	return Value{text: s}
}

// Date builds a date value at midnight UTC
func Date(year int, month time.Month, day int) Value {
	return Value{date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), isDate: true}
}

// DateOf truncates t to its calendar day
func DateOf(t time.Time) Value {
	return Date(t.Year(), t.Month(), t.Day())
}

func (v Value) IsDate() bool {
	return v.isDate
}

// Time returns the date and whether the value is one
func (v Value) Time() (time.Time, bool) {
	return v.date, v.isDate
}

// CellValue returns what gets written into the spreadsheet cell
func (v Value) CellValue() interface{} {
	if v.isDate {
		return v.date
	}
	return v.text
}

func (v Value) IsEmpty() bool {
	return !v.isDate && v.text == ""
}

func (v Value) String() string {
	if v.isDate {
		return v.date.Format(DateLayout)
	}
	return v.text
}

// Record is one row of schedule data keyed by field key
type Record map[string]Value

// Get returns the value for key, or empty text when the record lacks it
func (r Record) Get(key string) Value {
	if v, ok := r[key]; ok {
		return v
	}
	return Text("")
}

// Table is a titled sheet of records laid out by fields
type Table struct {
	Title   string
	Fields  []Field
	Records []Record
}

// Headers returns the header row in field order
func (t Table) Headers() []string {
	headers := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		headers[i] = f.Header
	}
	return headers
}

// Row returns the record's values in field order
func (t Table) Row(r Record) []Value {
	row := make([]Value, len(t.Fields))
	for i, f := range t.Fields {
		row[i] = r.Get(f.Key)
	}
	return row
}
