package generator

import (
	"fmt"
	"strings"
	"time"
)

// Identifier sequences are strictly increasing within a run and never reused.
// Transactions count per (year-month, branch), payments per branch, customers
// per branch number. Line items carry their 1-based position instead of a
// counter.

// nextTransactionID allocates an id shaped YYYY-MM-<seq>-<BRANCHCODE>.
func (g *Generator) nextTransactionID(branchCode string, now time.Time) string {
	ym := now.Format("2006-01")
	key := ym + "-" + branchCode
	g.trxSeq[key]++
	return fmt.Sprintf("%s-%05d-%s", ym, g.trxSeq[key], branchCode)
}

// LineItemID derives the id for the line item at the given 0-based index of
// its owning transaction: YYYY-MM-<seq>-<pos>-<BRANCHCODE>.
func LineItemID(transactionID string, index int) string {
	parts := strings.SplitN(transactionID, "-", 4)
	return fmt.Sprintf("%s-%s-%s-%03d-%s", parts[0], parts[1], parts[2], index+1, parts[3])
}

// nextPaymentID allocates PAY-<seq>-<BRANCHCODE>.
func (g *Generator) nextPaymentID(branchCode string) string {
	g.paySeq[branchCode]++
	return fmt.Sprintf("PAY-%d-%s", g.paySeq[branchCode], branchCode)
}

// nextCustomerID allocates CUST-<branchNumber>-<seq>.
func (g *Generator) nextCustomerID(branchNumber int) string {
	g.custSeq[branchNumber]++
	return fmt.Sprintf("CUST-%d-%d", branchNumber, g.custSeq[branchNumber])
}

func promoID(idx int) string {
	return fmt.Sprintf("PROMO-%03d", idx)
}

func unavailabilityID(idx int) string {
	return fmt.Sprintf("UNAV-%03d", idx)
}
