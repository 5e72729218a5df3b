package dal

import (
	"context"
	"fmt"
	"math"
)

// MaxPriceConfirmations bounds the number of prompts a single ModifyPrice
// call may issue.
const MaxPriceConfirmations = 8

// Confirmer asks an operator a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// ModifyPrice applies a price change.
//
// A positive amount replaces the price. Zero or a negative amount is a
// discount: it is added to the price and the operator is asked to confirm.
// A declined discount is retried with the sign flipped, which for a
// non-zero discount sets the price to its magnitude. A discount larger than
// the price leaves it negative.
func (c *Car) ModifyPrice(ctx context.Context, amount float64, confirm Confirmer) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrNotFinite
	}
	for attempt := 0; ; attempt++ {
		if amount > 0 {
			c.Price = amount
			return nil
		}
		if attempt >= MaxPriceConfirmations {
			return ErrConfirmationExhausted
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		c.Price += amount
		ok, err := confirm.Confirm(ctx, fmt.Sprintf("The price has been discounted by %.2f.", math.Abs(amount)))
		if err != nil {
			return fmt.Errorf("confirm discount: %w", err)
		}
		if ok {
			return nil
		}
		amount = -amount
	}
}
