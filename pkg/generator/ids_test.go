package generator

import (
	"testing"
	"time"
)

func TestNextTransactionID(t *testing.T) {
	g := testGenerator(t, 1, 0)
	sept := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)
	aug := time.Date(2025, 8, 2, 12, 0, 0, 0, time.UTC)

	if got := g.nextTransactionID("SMVAL", sept); got != "2025-09-00001-SMVAL" {
		t.Errorf("got %s", got)
	}
	if got := g.nextTransactionID("SMVAL", sept); got != "2025-09-00002-SMVAL" {
		t.Errorf("got %s", got)
	}
	// Sequences are scoped per year-month and per branch.
	if got := g.nextTransactionID("SMVAL", aug); got != "2025-08-00001-SMVAL" {
		t.Errorf("got %s", got)
	}
	if got := g.nextTransactionID("VAL", sept); got != "2025-09-00001-VAL" {
		t.Errorf("got %s", got)
	}
}

func TestLineItemID(t *testing.T) {
	cases := []struct {
		trxID string
		index int
		want  string
	}{
		{"2025-09-00001-SMVAL", 0, "2025-09-00001-001-SMVAL"},
		{"2025-09-00001-SMVAL", 11, "2025-09-00001-012-SMVAL"},
		// Branch codes containing hyphens stay intact.
		{"2025-09-00042-SM-VAL", 2, "2025-09-00042-003-SM-VAL"},
	}
	for _, c := range cases {
		if got := LineItemID(c.trxID, c.index); got != c.want {
			t.Errorf("LineItemID(%s, %d) = %s, want %s", c.trxID, c.index, got, c.want)
		}
	}
}

func TestNextPaymentID(t *testing.T) {
	g := testGenerator(t, 1, 0)
	if got := g.nextPaymentID("VAL"); got != "PAY-1-VAL" {
		t.Errorf("got %s", got)
	}
	if got := g.nextPaymentID("VAL"); got != "PAY-2-VAL" {
		t.Errorf("got %s", got)
	}
	if got := g.nextPaymentID("SMGRA"); got != "PAY-1-SMGRA" {
		t.Errorf("got %s", got)
	}
}

func TestNextCustomerID(t *testing.T) {
	g := testGenerator(t, 1, 0)
	if got := g.nextCustomerID(2); got != "CUST-2-1" {
		t.Errorf("got %s", got)
	}
	if got := g.nextCustomerID(2); got != "CUST-2-2" {
		t.Errorf("got %s", got)
	}
	if got := g.nextCustomerID(4); got != "CUST-4-1" {
		t.Errorf("got %s", got)
	}
}
