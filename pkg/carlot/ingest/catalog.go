package ingest

import (
	"fmt"
	"io"

	"github.com/nekruzvatanshoev/carlot/pkg/carlot/dal"
)

// Catalog is every car parsed in a run plus the sellers listing them.
type Catalog struct {
	Cars []*dal.Car

	sellers map[string]*dal.Seller
	order   []string
}

func NewCatalog() *Catalog {
	return &Catalog{sellers: make(map[string]*dal.Seller)}
}

// Seller looks up a seller by name.
func (c *Catalog) Seller(name string) (*dal.Seller, bool) {
	s, ok := c.sellers[name]
	return s, ok
}

// Sellers returns sellers in the order their names were first seen.
func (c *Catalog) Sellers() []*dal.Seller {
	out := make([]*dal.Seller, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.sellers[name])
	}
	return out
}

// SellerCount is one line of the inventory report.
type SellerCount struct {
	Name   string `json:"name"`
	Rating string `json:"rating"`
	Count  int    `json:"count"`
}

func (s SellerCount) String() string {
	return fmt.Sprintf("%s has %d cars in inventory.", s.Name, s.Count)
}

// Report returns inventory counts in first-seen seller order.
func (c *Catalog) Report() []SellerCount {
	out := make([]SellerCount, 0, len(c.order))
	for _, s := range c.Sellers() {
		out = append(out, SellerCount{Name: s.Name, Rating: s.Rating, Count: s.Count()})
	}
	return out
}

// WriteReport writes one "<seller> has <n> cars in inventory." line per seller.
func WriteReport(w io.Writer, c *Catalog) error {
	for _, line := range c.Report() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteDiagnostics writes one line per skipped record.
func WriteDiagnostics(w io.Writer, diags []Diagnostic) error {
	for _, d := range diags {
		if _, err := fmt.Fprintln(w, d); err != nil {
			return err
		}
	}
	return nil
}
