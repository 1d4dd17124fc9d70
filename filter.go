package cgtimport

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/cgtimport/date"
)

// Filter returns the transactions matching predicate, a JSONPath filter
// expression evaluated against each transaction's JSON form, e.g.
//
//	@.action == "SELL" && @.amount > 1000
//
// An empty predicate matches everything. Order is preserved.
func Filter(txs []BrokerTransaction, predicate string) ([]BrokerTransaction, error) {
	if predicate == "" {
		return txs, nil
	}
	// jsonpath alone only knows paths, comparisons and logic come from gval.
	eval, err := gval.Full(jsonpath.Language()).NewEvaluable("$[?(" + predicate + ")]")
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", predicate, err)
	}

	var kept []BrokerTransaction
	for _, tx := range txs {
		data, err := json.Marshal(tx)
		if err != nil {
			return nil, err
		}
		var jobj any
		if err := json.Unmarshal(data, &jobj); err != nil {
			return nil, err
		}
		// wrap the object in a list so that the filter selects it or not.
		jval, err := eval(context.Background(), []any{jobj})
		if err != nil {
			return nil, fmt.Errorf("cannot evaluate filter %q on %s transaction on %v: %w", predicate, tx.Action, tx.Date, err)
		}
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			kept = append(kept, tx)
		}
	}
	return kept, nil
}

// InRange returns the transactions dated within r, in order.
func InRange(txs []BrokerTransaction, r date.Range) []BrokerTransaction {
	if r.IsOpen() {
		return txs
	}
	var kept []BrokerTransaction
	for _, tx := range txs {
		if r.Contains(tx.Date) {
			kept = append(kept, tx)
		}
	}
	return kept
}
