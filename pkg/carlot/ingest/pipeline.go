package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nekruzvatanshoev/carlot/pkg/carlot/dal"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/metrics"
	"github.com/nekruzvatanshoev/carlot/pkg/logger"
)

// Diagnostic describes a record that was skipped.
type Diagnostic struct {
	Row int
	Err error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("skipped row %d: %v", d.Row, d.Err)
}

// Pipeline turns listing records into a Catalog.
type Pipeline struct {
	log     *logger.Logger
	metrics *metrics.Registry
}

// NewPipeline returns a pipeline. Both arguments may be nil.
func NewPipeline(log *logger.Logger, m *metrics.Registry) *Pipeline {
	if log == nil {
		log = logger.Nop()
	}
	return &Pipeline{log: log, metrics: m}
}

// BuildCatalog ingests every record from src with a silent pipeline.
func BuildCatalog(ctx context.Context, src Source) (*Catalog, []Diagnostic, error) {
	return NewPipeline(nil, nil).BuildCatalog(ctx, src)
}

// BuildCatalog reads src to the end. Records that fail to parse are skipped
// and reported as diagnostics; only a read error or cancellation aborts.
func (p *Pipeline) BuildCatalog(ctx context.Context, src Source) (*Catalog, []Diagnostic, error) {
	cat := NewCatalog()
	var diags []Diagnostic

	for row := 1; ; row++ {
		if err := ctx.Err(); err != nil {
			return cat, diags, err
		}
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		var csvErr *csv.ParseError
		if errors.As(err, &csvErr) {
			diags = append(diags, p.skip(row, "", err))
			continue
		}
		if err != nil {
			return cat, diags, fmt.Errorf("read row %d: %w", row, err)
		}

		if err := p.ingest(cat, rec); err != nil {
			var perr *dal.ParseError
			if !errors.As(err, &perr) {
				return cat, diags, fmt.Errorf("row %d: %w", row, err)
			}
			diags = append(diags, p.skip(row, perr.Field, err))
			continue
		}
		if p.metrics != nil {
			p.metrics.CarsIngested.Inc()
		}
	}

	if p.metrics != nil {
		p.metrics.Sellers.Set(float64(len(cat.order)))
	}
	p.log.Info("catalog built", "cars", len(cat.Cars), "sellers", len(cat.order), "skipped", len(diags))
	return cat, diags, nil
}

// skip logs and counts a rejected row. A malformed CSV row has no field.
func (p *Pipeline) skip(row int, field string, err error) Diagnostic {
	p.log.Warn("skipping record", "row", row, "field", field, "error", err)
	if p.metrics != nil {
		p.metrics.Skipped.Inc()
	}
	return Diagnostic{Row: row, Err: err}
}

func (p *Pipeline) ingest(cat *Catalog, rec Record) error {
	accident, ok := rec[KeyAccident]
	if !ok {
		accident = DefaultAccident
	}

	car, err := dal.NewCar(dal.CarFields{
		Manufacturer:  rec[KeyManufacturer],
		Model:         rec[KeyModel],
		Year:          rec[KeyYear],
		Mileage:       rec[KeyMileage],
		Engine:        rec[KeyEngine],
		Transmission:  rec[KeyTransmission],
		Drivetrain:    rec[KeyDrivetrain],
		MPG:           rec[KeyMPG],
		ExteriorColor: rec[KeyExteriorColor],
		InteriorColor: rec[KeyInteriorColor],
		Accident:      accident,
		Price:         rec[KeyPrice],
	})
	if err != nil {
		return err
	}

	name := rec[KeySellerName]
	if strings.TrimSpace(name) == "" {
		return &dal.ParseError{Field: KeySellerName, Value: name, Err: dal.ErrMissingField}
	}

	cat.Cars = append(cat.Cars, car)
	seller, ok := cat.sellers[name]
	if !ok {
		seller = dal.NewSeller(name, rec[KeySellerRating])
		cat.sellers[name] = seller
		cat.order = append(cat.order, name)
	}
	seller.Buy(car)
	return nil
}
