package computershare

import (
	"strings"

	"github.com/etnz/cgtimport"
)

// Description labels found in the export.
const (
	labelPayroll  = "PAYROLL DEDUCTION"
	labelReinvest = "DIVIDEND REINVESTMENT"
	labelSale     = "SALE" // matched as a substring, sales come with several labels
)

// ActionFromLabel returns the action described by a transaction label.
//
// Unknown labels are a *cgtimport.ParsingError.
func ActionFromLabel(label string) (cgtimport.ActionType, error) {
	switch {
	case label == labelPayroll:
		return cgtimport.ActionBuy, nil
	case label == labelReinvest:
		return cgtimport.ActionReinvestDividends, nil
	case strings.Contains(label, labelSale):
		return cgtimport.ActionSell, nil
	default:
		return "", &cgtimport.ParsingError{File: "computershare transactions", Message: "Unknown action: " + label}
	}
}
