package cgtimport

import (
	"errors"
	"strings"
	"testing"

	"github.com/etnz/cgtimport/date"
	"github.com/shopspring/decimal"
)

func sampleBuy() BrokerTransaction {
	return BrokerTransaction{
		Date:     date.New(2024, 7, 1),
		Action:   ActionBuy,
		Symbol:   "ACME",
		Quantity: dec("1.3006"),
		Price:    dec("194.6312"),
		Fees:     decimal.Zero,
		Amount:   dec("-253.14"),
		Currency: "USD",
		Broker:   "Computershare",
	}
}

func TestBrokerTransaction_Mirror(t *testing.T) {
	buy := sampleBuy()
	transfer := buy.Mirror(ActionTransfer)

	if transfer.Action != ActionTransfer {
		t.Errorf("Mirror().Action = %v, want %v", transfer.Action, ActionTransfer)
	}
	if !transfer.Amount.Decimal.Equal(decimal.RequireFromString("253.14")) {
		t.Errorf("Mirror().Amount = %v, want 253.14", transfer.Amount.Decimal)
	}
	// everything else is shared
	back := transfer.Mirror(ActionBuy)
	if !back.Equal(buy) {
		t.Errorf("Mirror(Mirror()) = %+v, want %+v", back, buy)
	}
	// the receiver is untouched
	if buy.Action != ActionBuy || !buy.Amount.Decimal.Equal(decimal.RequireFromString("-253.14")) {
		t.Errorf("Mirror() modified its receiver: %+v", buy)
	}

	noAmount := buy
	noAmount.Amount = None
	if m := noAmount.Mirror(ActionTransfer); m.Amount.Valid {
		t.Errorf("Mirror() of an absent amount = %v, want absent", m.Amount)
	}
}

func TestBrokerTransaction_Equal(t *testing.T) {
	a := sampleBuy()
	b := sampleBuy()
	b.Price = dec("194.63120") // same value, other exponent
	if !a.Equal(b) {
		t.Errorf("Equal() = false for decimals of equal value")
	}
	b.Quantity = None
	if a.Equal(b) {
		t.Errorf("Equal() = true with an absent quantity")
	}
}

func TestBrokerTransaction_Validate(t *testing.T) {
	if err := sampleBuy().Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}

	invalid := sampleBuy()
	invalid.Action = "GIFT"
	invalid.Currency = "XYZ1"
	invalid.Symbol = ""
	err := invalid.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want an error")
	}
	for _, want := range []string{"GIFT", "XYZ1", "missing symbol"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %q, want it to mention %q", err, want)
		}
	}

	sale := sampleBuy()
	sale.Action = ActionSell
	sale.Fees = decimal.RequireFromString("-21990")
	if err := sale.Validate(); err != nil {
		t.Errorf("Validate() of negative fees: %v", err)
	}
}

func TestBrokerTransaction_Money(t *testing.T) {
	if got, want := sampleBuy().Money().String(), "-$253.14"; got != want {
		t.Errorf("Money().String() = %q, want %q", got, want)
	}
	tx := sampleBuy()
	tx.Amount = None
	if !tx.Money().IsZero() {
		t.Errorf("Money() of an absent amount = %v, want 0", tx.Money())
	}
}

func TestParseActionType(t *testing.T) {
	for _, a := range []ActionType{ActionBuy, ActionSell, ActionReinvestDividends, ActionTransfer, ActionDividend} {
		got, err := ParseActionType(a.String())
		if err != nil || got != a {
			t.Errorf("ParseActionType(%q) = %v, %v", a, got, err)
		}
	}
	if _, err := ParseActionType("buy"); err == nil {
		t.Errorf("ParseActionType(%q) = nil error, want error", "buy")
	}
}

func TestErrors(t *testing.T) {
	var err error = &ParsingError{File: "f.csv", Message: "Unknown action: X"}
	if !errors.Is(err, ErrParsing) || errors.Is(err, ErrColumnCount) {
		t.Errorf("ParsingError does not match ErrParsing only")
	}
	if got, want := err.Error(), "while parsing f.csv: Unknown action: X"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = &UnexpectedColumnCountError{Row: []string{"a", "b"}, Expected: 7, File: "f.csv"}
	if !errors.Is(err, ErrColumnCount) || errors.Is(err, ErrParsing) {
		t.Errorf("UnexpectedColumnCountError does not match ErrColumnCount only")
	}
	if !strings.Contains(err.Error(), "(7)") || !strings.Contains(err.Error(), "f.csv") {
		t.Errorf("Error() = %q, want expected count and file", err)
	}
}
