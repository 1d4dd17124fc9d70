package cgtimport

import (
	"slices"
	"testing"

	"github.com/etnz/cgtimport/date"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.NullDecimal { return Some(decimal.RequireFromString(s)) }

func TestNewBalance(t *testing.T) {
	day := date.New(2024, 7, 1)
	txs := []BrokerTransaction{
		{Date: day, Action: ActionTransfer, Symbol: "ACME", Quantity: dec("2"), Amount: dec("200"), Currency: "USD"},
		{Date: day, Action: ActionBuy, Symbol: "ACME", Quantity: dec("2"), Amount: dec("-200"), Currency: "USD"},
		{Date: day, Action: ActionDividend, Symbol: "ACME", Quantity: dec("0.5"), Amount: dec("50"), Currency: "USD"},
		{Date: day, Action: ActionBuy, Symbol: "ACME", Quantity: dec("0.5"), Amount: dec("-50"), Currency: "USD"},
		{Date: day, Action: ActionSell, Symbol: "ACME", Quantity: dec("-1"), Amount: dec("120"), Currency: "USD"},
		{Date: day, Action: ActionBuy, Symbol: "OTHER", Quantity: None, Amount: dec("-10"), Currency: "EUR"},
	}

	b := NewBalance(txs)

	if got := b.Len(); got != len(txs) {
		t.Errorf("Len() = %d, want %d", got, len(txs))
	}
	if got, want := b.Cash("USD"), M(120, "USD"); !got.Equal(want) {
		t.Errorf("Cash(USD) = %v, want %v", got, want)
	}
	if got, want := b.Cash("EUR"), M(-10, "EUR"); !got.Equal(want) {
		t.Errorf("Cash(EUR) = %v, want %v", got, want)
	}
	if got := b.Cash("GBP"); !got.IsZero() {
		t.Errorf("Cash(GBP) = %v, want 0", got)
	}
	if got, want := b.Position("ACME"), decimal.RequireFromString("1.5"); !got.Equal(want) {
		t.Errorf("Position(ACME) = %v, want %v", got, want)
	}
	if got := b.Position("OTHER"); !got.IsZero() {
		t.Errorf("Position(OTHER) = %v, want 0", got)
	}
	if got, want := b.Currencies(), []string{"EUR", "USD"}; !slices.Equal(got, want) {
		t.Errorf("Currencies() = %v, want %v", got, want)
	}
	if got, want := b.Symbols(), []string{"ACME"}; !slices.Equal(got, want) {
		t.Errorf("Symbols() = %v, want %v", got, want)
	}
}
