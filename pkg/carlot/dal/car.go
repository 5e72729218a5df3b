package dal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Car defines a single used-car listing
type Car struct {
	Manufacturer  string  `json:"manufacturer"`
	Model         string  `json:"model"`
	Year          int     `json:"year"`
	Mileage       float64 `json:"mileage"`
	Engine        string  `json:"engine"`
	Transmission  string  `json:"transmission"`
	Drivetrain    string  `json:"drivetrain"`
	MPG           float64 `json:"mpg"`
	ExteriorColor string  `json:"exterior_color"`
	InteriorColor string  `json:"interior_color"`
	Accident      bool    `json:"accident"`
	Price         float64 `json:"price"`
}

// CarFields holds the raw text of a listing before parsing.
type CarFields struct {
	Manufacturer  string
	Model         string
	Year          string
	Mileage       string
	Engine        string
	Transmission  string
	Drivetrain    string
	MPG           string
	ExteriorColor string
	InteriorColor string
	Accident      string
	Price         string
}

// NewCar parses raw fields into a Car. Year and mpg must parse; empty mileage
// and price default to zero.
func NewCar(f CarFields) (*Car, error) {
	year, err := parseYear(f.Year)
	if err != nil {
		return nil, err
	}
	mileage, err := parseOptionalFloat("mileage", f.Mileage)
	if err != nil {
		return nil, err
	}
	if mileage < 0 {
		return nil, &ParseError{Field: "mileage", Value: f.Mileage, Err: ErrNegativeMiles}
	}
	mpg, err := parseMPG(f.MPG)
	if err != nil {
		return nil, err
	}
	price, err := parseOptionalFloat("price", f.Price)
	if err != nil {
		return nil, err
	}

	return &Car{
		Manufacturer:  f.Manufacturer,
		Model:         f.Model,
		Year:          year,
		Mileage:       mileage,
		Engine:        f.Engine,
		Transmission:  f.Transmission,
		Drivetrain:    f.Drivetrain,
		MPG:           mpg,
		ExteriorColor: f.ExteriorColor,
		InteriorColor: f.InteriorColor,
		Accident:      strings.EqualFold(strings.TrimSpace(f.Accident), "yes"),
		Price:         price,
	}, nil
}

func parseYear(raw string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ParseError{Field: "year", Value: raw, Err: err}
	}
	return year, nil
}

func parseOptionalFloat(field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	v, err := parseFinite(s)
	if err != nil {
		return 0, &ParseError{Field: field, Value: raw, Err: err}
	}
	return v, nil
}

// parseFinite rejects NaN and infinities, which ParseFloat accepts.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}

// parseMPG accepts a single value ("30") or a range ("18-24"), which is
// stored as its mean.
func parseMPG(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if !strings.Contains(s, "-") {
		v, err := parseFinite(s)
		if err != nil {
			return 0, &ParseError{Field: "mpg", Value: raw, Err: err}
		}
		return v, nil
	}

	bounds := strings.Split(s, "-")
	if len(bounds) != 2 {
		return 0, &ParseError{Field: "mpg", Value: raw, Err: ErrBadRange}
	}
	low, err := parseFinite(strings.TrimSpace(bounds[0]))
	if err != nil {
		return 0, &ParseError{Field: "mpg", Value: raw, Err: err}
	}
	high, err := parseFinite(strings.TrimSpace(bounds[1]))
	if err != nil {
		return 0, &ParseError{Field: "mpg", Value: raw, Err: err}
	}
	return (low + high) / 2, nil
}

// String identifies the car in logs and errors.
func (c *Car) String() string {
	return fmt.Sprintf("%d %s %s", c.Year, c.Manufacturer, c.Model)
}

// Paint changes the exterior color.
func (c *Car) Paint(color string) {
	c.ExteriorColor = color
}

// Reupholster changes the interior color.
func (c *Car) Reupholster(color string) {
	c.InteriorColor = color
}

// Repair replaces the named component. Unknown names return *InvalidPartError.
func (c *Car) Repair(part, newPart string) error {
	p, err := ParsePart(part)
	if err != nil {
		return err
	}
	return c.RepairPart(p, newPart)
}

// RepairPart replaces exactly one of engine, transmission or drivetrain.
func (c *Car) RepairPart(part Part, newPart string) error {
	switch part {
	case PartEngine:
		c.Engine = newPart
	case PartTransmission:
		c.Transmission = newPart
	case PartDrivetrain:
		c.Drivetrain = newPart
	default:
		return &InvalidPartError{Part: part.String()}
	}
	return nil
}

// Drive adds miles to the odometer.
func (c *Car) Drive(miles float64) error {
	if math.IsNaN(miles) || math.IsInf(miles, 0) {
		return ErrNotFinite
	}
	if miles < 0 {
		return ErrNegativeMiles
	}
	c.Mileage += miles
	return nil
}
