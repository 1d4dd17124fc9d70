package cgtimport

import (
	"errors"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/etnz/cgtimport/date"
	"github.com/shopspring/decimal"
)

// BrokerTransaction is a single normalized transaction read from a broker export.
//
// Quantity, Price and Amount are optional: a broker row may leave them blank
// and computations depending on them are skipped rather than defaulted.
//
// BrokerTransaction is a value type. Functions that need a variant of a
// record return a modified copy and never alter their receiver.
type BrokerTransaction struct {
	Date        date.Date
	Action      ActionType
	Symbol      string
	Description string
	Quantity    decimal.NullDecimal // signed number of shares
	Price       decimal.NullDecimal // price per share
	Fees        decimal.Decimal
	Amount      decimal.NullDecimal // signed cash amount, negative for outflows
	Currency    string
	Broker      string
}

// Some returns a present optional decimal.
func Some(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// None is the absent optional decimal.
var None = decimal.NullDecimal{}

// WithAction returns a copy of t with its action replaced.
func (t BrokerTransaction) WithAction(action ActionType) BrokerTransaction {
	t.Action = action
	return t
}

// Mirror returns the offsetting record of t: a copy with the given action and
// the opposite amount. Everything else, fees included, is shared with t.
func (t BrokerTransaction) Mirror(action ActionType) BrokerTransaction {
	m := t.WithAction(action)
	if m.Amount.Valid {
		m.Amount = Some(m.Amount.Decimal.Neg())
	}
	return m
}

// Money returns the amount in the transaction currency, zero if absent.
func (t BrokerTransaction) Money() Money {
	if !t.Amount.Valid {
		return M(decimal.Zero, t.Currency)
	}
	return M(t.Amount.Decimal, t.Currency)
}

// Equal reports whether t and u describe the same transaction, comparing
// decimals by value.
func (t BrokerTransaction) Equal(u BrokerTransaction) bool {
	return t.Date == u.Date &&
		t.Action == u.Action &&
		t.Symbol == u.Symbol &&
		t.Description == u.Description &&
		nullEqual(t.Quantity, u.Quantity) &&
		nullEqual(t.Price, u.Price) &&
		t.Fees.Equal(u.Fees) &&
		nullEqual(t.Amount, u.Amount) &&
		t.Currency == u.Currency &&
		t.Broker == u.Broker
}

func nullEqual(a, b decimal.NullDecimal) bool {
	if a.Valid != b.Valid {
		return false
	}
	return !a.Valid || a.Decimal.Equal(b.Decimal)
}

// Validate checks that the transaction can be handed to the gains engine.
//
// Fees are not checked: sales derive them from the broker amounts and may
// legitimately come out negative.
func (t BrokerTransaction) Validate() error {
	var errs error
	if t.Date.IsZero() {
		errs = errors.Join(errs, errors.New("missing date"))
	}
	if !t.Action.IsValid() {
		errs = errors.Join(errs, fmt.Errorf("unknown action %q", t.Action))
	}
	if t.Symbol == "" {
		errs = errors.Join(errs, errors.New("missing symbol"))
	}
	if money.GetCurrency(t.Currency) == nil {
		errs = errors.Join(errs, fmt.Errorf("unknown currency %q", t.Currency))
	}
	if errs != nil {
		return fmt.Errorf("invalid %s transaction on %v: %w", t.Action, t.Date, errs)
	}
	return nil
}
