package cgtimport

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// Balance is the running cash and share position implied by a sequence of
// transactions.
//
// Cash is the sum of every amount, per currency. Positions are the sum of
// BUY and SELL quantities, per symbol: TRANSFER and DIVIDEND only move cash.
// For a correctly paired sequence, a payroll purchase leaves cash untouched
// and a dividend reinvestment leaves cash untouched too.
type Balance struct {
	cash      map[string]decimal.Decimal
	positions map[string]decimal.Decimal
	count     int
}

// NewBalance computes the balance after all transactions in txs.
func NewBalance(txs []BrokerTransaction) *Balance {
	b := &Balance{
		cash:      make(map[string]decimal.Decimal),
		positions: make(map[string]decimal.Decimal),
	}
	for _, tx := range txs {
		b.Apply(tx)
	}
	return b
}

// Apply updates the balance with a single transaction.
func (b *Balance) Apply(tx BrokerTransaction) {
	b.count++
	if tx.Amount.Valid {
		b.cash[tx.Currency] = b.cash[tx.Currency].Add(tx.Amount.Decimal)
	}
	switch tx.Action {
	case ActionBuy, ActionSell:
		if tx.Quantity.Valid {
			b.positions[tx.Symbol] = b.positions[tx.Symbol].Add(tx.Quantity.Decimal)
		}
	}
}

// Cash returns the cash balance in currency.
func (b *Balance) Cash(currency string) Money { return M(b.cash[currency], currency) }

// Position returns the number of shares held for symbol.
func (b *Balance) Position(symbol string) decimal.Decimal { return b.positions[symbol] }

// Currencies returns the currencies with a cash movement, sorted.
func (b *Balance) Currencies() []string { return slices.Sorted(maps.Keys(b.cash)) }

// Symbols returns the symbols with a share movement, sorted.
func (b *Balance) Symbols() []string { return slices.Sorted(maps.Keys(b.positions)) }

// Len returns the number of transactions applied.
func (b *Balance) Len() int { return b.count }
