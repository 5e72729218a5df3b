package ingest

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nekruzvatanshoev/carlot/pkg/carlot/dal"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/metrics"
	"github.com/nekruzvatanshoev/carlot/pkg/logger"
)

func listing(seller, model, price string) Record {
	return Record{
		KeyManufacturer:  "Toyota",
		KeyModel:         model,
		KeyYear:          "2018",
		KeyMileage:       "51000",
		KeyEngine:        "2.5L I4",
		KeyTransmission:  "Automatic",
		KeyDrivetrain:    "Front-wheel Drive",
		KeyMPG:           "28-39",
		KeyExteriorColor: "Silver",
		KeyInteriorColor: "Gray",
		KeyAccident:      "No",
		KeyPrice:         price,
		KeySellerName:    seller,
		KeySellerRating:  "4.7",
	}
}

func observedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &logger.Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func TestBuildCatalog_SkipsBadRecord(t *testing.T) {
	src := NewSliceSource(
		listing("Alpha Motors", "Camry", "18000"),
		listing("Beta Autos", "Corolla", "15000"),
		listing("Alpha Motors", "RAV4", "not-a-price"),
		listing("Gamma Cars", "Prius", "21000"),
		listing("Beta Autos", "Tacoma", "29000"),
	)
	log, logs := observedLogger()
	m := metrics.NewRegistry()

	cat, diags, err := NewPipeline(log, m).BuildCatalog(context.Background(), src)
	require.NoError(t, err)

	assert.Len(t, cat.Cars, 4)
	require.Len(t, diags, 1)
	assert.Equal(t, 3, diags[0].Row)

	var perr *dal.ParseError
	require.True(t, errors.As(diags[0].Err, &perr))
	assert.Equal(t, "price", perr.Field)

	skips := logs.FilterMessage("skipping record").All()
	require.Len(t, skips, 1)
	assert.Equal(t, zapcore.WarnLevel, skips[0].Level)
	assert.Equal(t, int64(3), skips[0].ContextMap()["row"])

	assert.Equal(t, 4.0, testutil.ToFloat64(m.CarsIngested))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Skipped))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Sellers))
}

func TestBuildCatalog_LinksCarsToSellers(t *testing.T) {
	src := NewSliceSource(
		listing("Alpha Motors", "Camry", "18000"),
		listing("Beta Autos", "Corolla", "15000"),
		listing("Alpha Motors", "RAV4", "26000"),
	)

	cat, diags, err := BuildCatalog(context.Background(), src)
	require.NoError(t, err)
	assert.Empty(t, diags)

	alpha, ok := cat.Seller("Alpha Motors")
	require.True(t, ok)
	assert.Equal(t, "4.7", alpha.Rating)
	require.Equal(t, 2, alpha.Count())
	assert.Same(t, cat.Cars[0], alpha.Inventory[0])
	assert.Same(t, cat.Cars[2], alpha.Inventory[1])

	_, ok = cat.Seller("Nobody")
	assert.False(t, ok)
}

func TestBuildCatalog_FirstSeenRatingWins(t *testing.T) {
	first := listing("Alpha Motors", "Camry", "18000")
	second := listing("Alpha Motors", "RAV4", "26000")
	second[KeySellerRating] = "1.0"

	cat, _, err := BuildCatalog(context.Background(), NewSliceSource(first, second))
	require.NoError(t, err)

	alpha, _ := cat.Seller("Alpha Motors")
	assert.Equal(t, "4.7", alpha.Rating)
}

func TestBuildCatalog_ReportOrder(t *testing.T) {
	src := NewSliceSource(
		listing("Zed Auto", "Camry", "18000"),
		listing("Acme", "Corolla", "15000"),
		listing("Acme", "RAV4", "26000"),
		listing("Midtown", "Prius", "21000"),
		listing("Zed Auto", "Tacoma", "29000"),
		listing("Acme", "Yaris", "11000"),
	)

	cat, _, err := BuildCatalog(context.Background(), src)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, cat))
	assert.Equal(t,
		"Zed Auto has 2 cars in inventory.\n"+
			"Acme has 3 cars in inventory.\n"+
			"Midtown has 1 cars in inventory.\n",
		buf.String())
}

func TestBuildCatalog_DefaultsAndTolerance(t *testing.T) {
	noAccident := listing("Alpha Motors", "Camry", "")
	delete(noAccident, KeyAccident)
	noAccident[KeyMileage] = ""

	crashed := listing("Alpha Motors", "RAV4", "9000")
	crashed[KeyAccident] = "YES"

	cat, diags, err := BuildCatalog(context.Background(), NewSliceSource(noAccident, crashed))
	require.NoError(t, err)
	assert.Empty(t, diags)
	require.Len(t, cat.Cars, 2)

	assert.False(t, cat.Cars[0].Accident)
	assert.Zero(t, cat.Cars[0].Price)
	assert.Zero(t, cat.Cars[0].Mileage)
	assert.True(t, cat.Cars[1].Accident)
}

func TestBuildCatalog_StrictFields(t *testing.T) {
	badYear := listing("Alpha Motors", "Camry", "18000")
	badYear[KeyYear] = "twenty"
	badMPG := listing("Alpha Motors", "RAV4", "18000")
	badMPG[KeyMPG] = "unknown"
	noSeller := listing("", "Prius", "18000")

	cat, diags, err := BuildCatalog(context.Background(), NewSliceSource(badYear, badMPG, noSeller))
	require.NoError(t, err)
	assert.Empty(t, cat.Cars)
	assert.Empty(t, cat.Sellers())
	require.Len(t, diags, 3)
	assert.ErrorIs(t, diags[2].Err, dal.ErrMissingField)

	var buf bytes.Buffer
	require.NoError(t, WriteDiagnostics(&buf, diags))
	assert.Contains(t, buf.String(), "skipped row 1: parse year")
	assert.Contains(t, buf.String(), "skipped row 2: parse mpg")
}

type failingSource struct{ err error }

func (f failingSource) Next() (Record, error) { return nil, f.err }

func TestBuildCatalog_SourceErrorAborts(t *testing.T) {
	boom := errors.New("disk gone")

	_, _, err := BuildCatalog(context.Background(), failingSource{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestBuildCatalog_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := BuildCatalog(ctx, NewSliceSource(listing("Alpha Motors", "Camry", "1")))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSliceSource(t *testing.T) {
	src := NewSliceSource(Record{KeyModel: "a"})

	rec, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", rec[KeyModel])

	_, err = src.Next()
	assert.ErrorIs(t, err, io.EOF)
}

// stepSource replays a fixed sequence of records and read errors.
type stepSource struct {
	steps []func() (Record, error)
}

func (s *stepSource) Next() (Record, error) {
	if len(s.steps) == 0 {
		return nil, io.EOF
	}
	step := s.steps[0]
	s.steps = s.steps[1:]
	return step()
}

func TestBuildCatalog_MalformedCSVRowSkipped(t *testing.T) {
	badRow := &csv.ParseError{StartLine: 3, Line: 3, Column: 13, Err: csv.ErrBareQuote}
	src := &stepSource{steps: []func() (Record, error){
		func() (Record, error) { return listing("Alpha Motors", "Camry", "18000"), nil },
		func() (Record, error) { return nil, badRow },
		func() (Record, error) { return listing("Beta Autos", "Corolla", "15000"), nil },
	}}
	log, logs := observedLogger()
	m := metrics.NewRegistry()

	cat, diags, err := NewPipeline(log, m).BuildCatalog(context.Background(), src)
	require.NoError(t, err)

	assert.Len(t, cat.Cars, 2)
	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].Row)
	assert.ErrorIs(t, diags[0].Err, csv.ErrBareQuote)
	assert.Len(t, logs.FilterMessage("skipping record").All(), 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Skipped))
}
