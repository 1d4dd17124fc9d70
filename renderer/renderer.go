// Package renderer renders broker transactions and balances as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/cgtimport"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.md
var templates embed.FS

// TransactionRow is a transaction formatted for display.
type TransactionRow struct {
	Date, Action, Symbol          string
	Quantity, Price, Fees, Amount string
	Summary                       string
}

// TransactionsView is the data rendered by Transactions.
type TransactionsView struct {
	Title string
	Rows  []TransactionRow
}

// Transactions renders transactions as a markdown table, in the given order.
func Transactions(title string, txs []cgtimport.BrokerTransaction) string {
	view := TransactionsView{Title: title}
	for _, tx := range txs {
		view.Rows = append(view.Rows, TransactionRow{
			Date:     tx.Date.String(),
			Action:   tx.Action.String(),
			Symbol:   tx.Symbol,
			Quantity: optional(tx.Quantity),
			Price:    optional(tx.Price),
			Fees:     cgtimport.M(tx.Fees, tx.Currency).String(),
			Amount:   amount(tx),
			Summary:  Transaction(tx),
		})
	}
	partials := map[string]string{
		"transactions_table": "templates/transactions_table.md",
	}
	return renderTemplate("transactions", "templates/transactions.md", partials, view)
}

// CashRow is the cash balance of a currency.
type CashRow struct{ Currency, Amount string }

// PositionRow is the number of shares held for a symbol.
type PositionRow struct{ Symbol, Shares string }

// BalanceView is the data rendered by Balance.
type BalanceView struct {
	Count     int
	Cash      []CashRow
	Positions []PositionRow
}

// Balance renders the cash and positions of b.
func Balance(b *cgtimport.Balance) string {
	view := BalanceView{Count: b.Len()}
	for _, cur := range b.Currencies() {
		view.Cash = append(view.Cash, CashRow{Currency: cur, Amount: b.Cash(cur).String()})
	}
	for _, sym := range b.Symbols() {
		view.Positions = append(view.Positions, PositionRow{Symbol: sym, Shares: b.Position(sym).String()})
	}
	return renderTemplate("balance", "templates/balance.md", nil, view)
}

func optional(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return d.Decimal.String()
}

func amount(tx cgtimport.BrokerTransaction) string {
	if !tx.Amount.Valid {
		return "-"
	}
	return tx.Money().SignedString()
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
