package cgtimport

import (
	"testing"

	"github.com/etnz/cgtimport/date"
)

func filterSample() []BrokerTransaction {
	buy := sampleBuy()
	sale := sampleBuy()
	sale.Date = date.New(2024, 8, 15)
	sale.Action = ActionSell
	sale.Amount = dec("1990")
	return []BrokerTransaction{buy.Mirror(ActionTransfer), buy, sale}
}

func TestFilter(t *testing.T) {
	txs := filterSample()
	testCases := []struct {
		predicate   string
		wantActions []ActionType
	}{
		{``, []ActionType{ActionTransfer, ActionBuy, ActionSell}},
		{`@.action == "SELL"`, []ActionType{ActionSell}},
		{`@.amount < 0`, []ActionType{ActionBuy}},
		{`@.amount > 0 && @.action != "SELL"`, []ActionType{ActionTransfer}},
		{`@.date == "2024-07-01"`, []ActionType{ActionTransfer, ActionBuy}},
		{`@.symbol == "OTHER"`, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.predicate, func(t *testing.T) {
			got, err := Filter(txs, tc.predicate)
			if err != nil {
				t.Fatalf("Filter(%q) unexpected error: %v", tc.predicate, err)
			}
			if len(got) != len(tc.wantActions) {
				t.Fatalf("Filter(%q) returned %d transactions, want %d", tc.predicate, len(got), len(tc.wantActions))
			}
			for i, tx := range got {
				if tx.Action != tc.wantActions[i] {
					t.Errorf("Filter(%q)[%d].Action = %v, want %v", tc.predicate, i, tx.Action, tc.wantActions[i])
				}
			}
		})
	}
}

func TestFilter_Invalid(t *testing.T) {
	if _, err := Filter(filterSample(), `@.action ==`); err == nil {
		t.Errorf("Filter() with an invalid predicate = nil error, want error")
	}
}

func TestInRange(t *testing.T) {
	txs := filterSample()
	if got := InRange(txs, date.Range{}); len(got) != 3 {
		t.Errorf("InRange(open) returned %d transactions, want 3", len(got))
	}
	got := InRange(txs, date.NewRange(date.New(2024, 8, 1), date.Date{}))
	if len(got) != 1 || got[0].Action != ActionSell {
		t.Errorf("InRange(since August) = %+v, want the sale only", got)
	}
}
