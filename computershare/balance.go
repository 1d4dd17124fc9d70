package computershare

import "github.com/etnz/cgtimport"

// Balance pairs every purchase with the cash movement funding it.
//
// A BUY is preceded by a TRANSFER of the opposite amount. A
// REINVEST_DIVIDENDS is preceded by a DIVIDEND of the opposite amount and
// becomes a BUY with its amount unchanged. Other transactions are kept as is,
// and the relative order of all transactions is preserved.
//
// txs is not modified.
func Balance(txs []cgtimport.BrokerTransaction) []cgtimport.BrokerTransaction {
	balanced := make([]cgtimport.BrokerTransaction, 0, len(txs))
	for _, t := range txs {
		switch t.Action {
		case cgtimport.ActionBuy:
			balanced = append(balanced, t.Mirror(cgtimport.ActionTransfer), t)
		case cgtimport.ActionReinvestDividends:
			balanced = append(balanced, t.Mirror(cgtimport.ActionDividend), t.WithAction(cgtimport.ActionBuy))
		default:
			balanced = append(balanced, t)
		}
	}
	return balanced
}
