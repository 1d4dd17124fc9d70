package cgtimport

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/cgtimport/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON encodes the transaction as a single JSON object with a stable
// field order. Absent quantity, price and amount are omitted.
func (t BrokerTransaction) MarshalJSON() ([]byte, error) {
	var o jsonFields
	o.add("date", t.Date)
	o.add("action", t.Action)
	o.add("symbol", t.Symbol)
	o.addNonZero("description", t.Description)
	o.addNonZero("quantity", t.Quantity)
	o.addNonZero("price", t.Price)
	o.add("fees", t.Fees)
	o.addNonZero("amount", t.Amount)
	o.add("currency", t.Currency)
	o.add("broker", t.Broker)
	return o.MarshalJSON()
}

// UnmarshalJSON decodes a transaction encoded by MarshalJSON.
func (t *BrokerTransaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		Date        date.Date           `json:"date"`
		Action      ActionType          `json:"action"`
		Symbol      string              `json:"symbol"`
		Description string              `json:"description"`
		Quantity    decimal.NullDecimal `json:"quantity"`
		Price       decimal.NullDecimal `json:"price"`
		Fees        decimal.Decimal     `json:"fees"`
		Amount      decimal.NullDecimal `json:"amount"`
		Currency    string              `json:"currency"`
		Broker      string              `json:"broker"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*t = BrokerTransaction(temp)
	return nil
}

// EncodeTransaction writes a single transaction as a JSON line.
func EncodeTransaction(w io.Writer, tx BrokerTransaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("cannot marshal %s transaction on %v: %w", tx.Action, tx.Date, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write transaction: %w", err)
	}
	return nil
}

// EncodeTransactions writes transactions in the JSONL format, one per line,
// in the given order. Order is meaningful: paired records are adjacent.
func EncodeTransactions(w io.Writer, txs []BrokerTransaction) error {
	for _, tx := range txs {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeTransactions reads transactions in the JSONL format. Blank lines are
// skipped and the order of the stream is preserved.
func DecodeTransactions(r io.Reader) ([]BrokerTransaction, error) {
	txs := make([]BrokerTransaction, 0)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var tx BrokerTransaction
		if err := json.Unmarshal(lineBytes, &tx); err != nil {
			return nil, fmt.Errorf("line %d: cannot decode transaction %q: %w", line, string(lineBytes), err)
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return txs, nil
}
