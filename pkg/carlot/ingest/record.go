package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Column names of a listing record.
const (
	KeyManufacturer  = "manufacturer"
	KeyModel         = "model"
	KeyYear          = "year"
	KeyMileage       = "mileage"
	KeyEngine        = "engine"
	KeyTransmission  = "transmission"
	KeyDrivetrain    = "drivetrain"
	KeyMPG           = "mpg"
	KeyExteriorColor = "exterior_color"
	KeyInteriorColor = "interior_color"
	KeyAccident      = "accident"
	KeyPrice         = "price"
	KeySellerName    = "seller_name"
	KeySellerRating  = "seller_rating"
)

// DefaultAccident is used when a record has no accident column.
const DefaultAccident = "No"

// Record maps column names to raw values.
type Record map[string]string

// Source yields records in order and returns io.EOF when exhausted.
type Source interface {
	Next() (Record, error)
}

// SliceSource serves records from memory.
type SliceSource struct {
	records []Record
	pos     int
}

func NewSliceSource(records ...Record) *SliceSource {
	return &SliceSource{records: records}
}

func (s *SliceSource) Next() (Record, error) {
	if s.pos >= len(s.records) {
		return nil, io.EOF
	}
	r := s.records[s.pos]
	s.pos++
	return r, nil
}

// CSVSource reads header-keyed records. Rows shorter than the header leave
// the trailing columns absent; extra cells are ignored. Stray quotes inside
// unquoted cells are kept as text.
type CSVSource struct {
	r      *csv.Reader
	header []string
}

func NewCSVSource(r io.Reader) (*CSVSource, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("csv: missing header row")
		}
		return nil, fmt.Errorf("csv: read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}
	return &CSVSource{r: cr, header: header}, nil
}

func (s *CSVSource) Next() (Record, error) {
	row, err := s.r.Read()
	if err != nil {
		return nil, err
	}
	rec := make(Record, len(s.header))
	for i, name := range s.header {
		if i < len(row) {
			rec[name] = row[i]
		}
	}
	return rec, nil
}
