package cgtimport

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m          Money
		want       string
		wantSigned string
	}{
		{M(253.14, "USD"), "$253.14", "+$253.14"},
		{M(-43.66, "USD"), "-$43.66", "-$43.66"},
		{M(0, "USD"), "$0.00", "-"},
		{M(12.345, "USD"), "$12.35", "+$12.35"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
		if got := tc.m.SignedString(); got != tc.wantSigned {
			t.Errorf("SignedString() = %q, want %q", got, tc.wantSigned)
		}
	}
}

func TestMoney_Neg(t *testing.T) {
	m := M(253.14, "USD")
	if m.IsNegative() || !m.Neg().IsNegative() {
		t.Errorf("Neg() = %v, want the opposite sign of %v", m.Neg(), m)
	}
	if !m.Neg().Neg().Equal(m) {
		t.Errorf("Neg().Neg() = %v, want %v", m.Neg().Neg(), m)
	}
	if m.Equal(M(253.14, "EUR")) {
		t.Error("Equal() must compare currencies")
	}
}
