package cgtimport

import "fmt"

// ActionType is a typed string for identifying what a broker transaction does.
type ActionType string

// Action types understood by the capital gains engine.
//
// TRANSFER and DIVIDEND are never read from a broker export, they are
// synthesized to balance the cash side of BUY and REINVEST_DIVIDENDS records.
const (
	ActionBuy               ActionType = "BUY"
	ActionSell              ActionType = "SELL"
	ActionReinvestDividends ActionType = "REINVEST_DIVIDENDS"
	ActionTransfer          ActionType = "TRANSFER"
	ActionDividend          ActionType = "DIVIDEND"
)

var actionTypes = []ActionType{ActionBuy, ActionSell, ActionReinvestDividends, ActionTransfer, ActionDividend}

func (a ActionType) String() string { return string(a) }

// IsValid reports whether a is one of the known action types.
func (a ActionType) IsValid() bool {
	for _, known := range actionTypes {
		if a == known {
			return true
		}
	}
	return false
}

// ParseActionType parses the canonical name of an action type.
func ParseActionType(s string) (ActionType, error) {
	a := ActionType(s)
	if !a.IsValid() {
		return "", fmt.Errorf("unknown action type: %q", s)
	}
	return a, nil
}

// UnmarshalText implements encoding.TextUnmarshaler, rejecting unknown actions.
func (a *ActionType) UnmarshalText(text []byte) error {
	parsed, err := ParseActionType(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
