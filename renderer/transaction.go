package renderer

import (
	"fmt"

	"github.com/etnz/cgtimport"
)

// Transaction renders a transaction to a short sentence.
func Transaction(tx cgtimport.BrokerTransaction) string {
	cash := tx.Money()
	if cash.IsNegative() {
		cash = cash.Neg()
	}
	switch tx.Action {
	case cgtimport.ActionBuy:
		if !tx.Quantity.Valid {
			return fmt.Sprintf("Bought %s for %s", tx.Symbol, cash)
		}
		return fmt.Sprintf("Bought %s %s for %s", tx.Quantity.Decimal, tx.Symbol, cash)
	case cgtimport.ActionSell:
		if !tx.Quantity.Valid {
			return fmt.Sprintf("Sold %s for %s", tx.Symbol, cash)
		}
		return fmt.Sprintf("Sold %s %s for %s", tx.Quantity.Decimal.Abs(), tx.Symbol, cash)
	case cgtimport.ActionReinvestDividends:
		return fmt.Sprintf("Reinvested %s of %s dividends", cash, tx.Symbol)
	case cgtimport.ActionDividend:
		return fmt.Sprintf("Dividend of %s for %s", cash, tx.Symbol)
	case cgtimport.ActionTransfer:
		if tx.Money().IsNegative() {
			return fmt.Sprintf("Transferred %s out", cash)
		}
		return fmt.Sprintf("Transferred %s in", cash)
	default:
		return tx.Action.String()
	}
}
