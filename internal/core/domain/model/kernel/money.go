package kernel

import (
	"fmt"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through one
// of the constructor functions. This error is returned when validating a zero value.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney or MoneyFromString",
)

// Money is a value object representing a non-negative monetary amount. It wraps
// github.com/shopspring/decimal to avoid binary floating point drift in prices and
// totals, which matters because invoice totals are recomputed and compared against
// frozen order totals.
//
// Money is immutable; arithmetic methods return new values. The zero value is
// invalid and must be constructed via NewMoney or MoneyFromString.
//
// Example:
//
//	price, err := kernel.MoneyFromString("0.5")
//	if err != nil {
//	    // handle invalid amount
//	}
//	subtotal := price.Mul(3)
//	fmt.Println(subtotal.String()) // "$1.50"
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a Money value from its decimal string representation,
// e.g. "12.50". Returns an error if the string is not a valid decimal or is negative.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	return NewMoney(amount)
}

// Zero returns the zero monetary amount. Used as the identity for summing totals.
func Zero() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the Money value was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Mul returns the amount multiplied by an integer quantity.
func (m Money) Mul(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  guard.NewConstructorGuard(),
	}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual compares two amounts by value, ignoring exponent representation,
// so 1.5 and 1.50 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the display form with a currency sign and two decimal places,
// e.g. "$1.50".
func (m Money) String() string {
	return "$" + m.amount.StringFixed(2)
}
