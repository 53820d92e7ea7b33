package validate

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/swaslabs/ledgen/pkg/models"
)

// Amounts are rounded to 2 decimals at write time, so comparisons allow a
// cent of float drift.
const tolerance = 0.011

// BranchLift compares average transaction amounts on promo days against
// normal days for one branch.
type BranchLift struct {
	BranchID  string
	PromoAvg  float64
	PromoN    int
	NormalAvg float64
	NormalN   int
}

// Report collects everything Check found.
type Report struct {
	Transactions   int
	Payments       int
	LineItems      int
	Customers      int
	FullDayWindows int
	Violations     []string
	PromoLift      []BranchLift
}

func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// Check runs the cross-collection consistency checks over a dataset: payment
// and line-item referential integrity, payment sums, full-day unavailability
// violations and customer aggregate totals.
func Check(ds *models.Dataset) *Report {
	r := &Report{
		Transactions: len(ds.Transactions),
		Payments:     len(ds.Payments),
		LineItems:    len(ds.LineItems),
		Customers:    len(ds.Customers),
	}

	txByID := make(map[string]*models.Transaction, len(ds.Transactions))
	for i := range ds.Transactions {
		txByID[ds.Transactions[i].TransactionID] = &ds.Transactions[i]
	}

	paymentByID := make(map[string]*models.Payment, len(ds.Payments))
	for i := range ds.Payments {
		p := &ds.Payments[i]
		paymentByID[p.PaymentID] = p
		if _, ok := txByID[p.TransactionID]; !ok {
			r.fail("payment %s references missing transaction %s", p.PaymentID, p.TransactionID)
		}
	}

	// Line items grouped by owning transaction; also each transaction's event
	// date, recovered from the line items' update timestamps.
	linesByTx := make(map[string][]string)
	eventDate := make(map[string]string)
	for _, li := range ds.LineItems {
		if _, ok := txByID[li.TransactionID]; !ok {
			r.fail("line item %s references missing transaction %s", li.LineItemID, li.TransactionID)
			continue
		}
		linesByTx[li.TransactionID] = append(linesByTx[li.TransactionID], li.LineItemID)
		eventDate[li.TransactionID] = dateOf(li.LatestUpdate)
	}

	fullDay := make(map[string]bool)
	for _, u := range ds.Unavailability {
		if u.Type == models.FullDay {
			fullDay[u.BranchID+"|"+u.DateUnavailable] = true
			r.FullDayWindows++
		}
	}

	pairsByCust := make(map[string]int)
	spendByCust := make(map[string]float64)

	for i := range ds.Transactions {
		t := &ds.Transactions[i]

		sum := 0.0
		for _, pid := range t.Payments {
			p, ok := paymentByID[pid]
			if !ok {
				r.fail("transaction %s lists missing payment %s", t.TransactionID, pid)
				continue
			}
			if p.TransactionID != t.TransactionID {
				r.fail("payment %s belongs to %s but is listed by %s", pid, p.TransactionID, t.TransactionID)
				continue
			}
			sum += p.PaymentAmount
		}
		if math.Abs(sum-t.AmountPaid) > tolerance {
			r.fail("transaction %s payments sum to %.2f, amount paid is %.2f", t.TransactionID, sum, t.AmountPaid)
		}

		if !sameSet(t.LineItemID, linesByTx[t.TransactionID]) {
			r.fail("transaction %s line item list does not match its line items", t.TransactionID)
		}

		if d := eventDate[t.TransactionID]; d != "" && fullDay[t.BranchID+"|"+d] {
			r.fail("transaction %s falls on full-day closure %s at %s", t.TransactionID, d, t.BranchID)
		}

		pairsByCust[t.CustID] += t.NoPairs
		spendByCust[t.CustID] += t.TotalAmount
	}

	for _, c := range ds.Customers {
		if pairsByCust[c.CustID] != c.TotalServices {
			r.fail("customer %s total services %d, transactions sum to %d", c.CustID, c.TotalServices, pairsByCust[c.CustID])
		}
		if math.Abs(spendByCust[c.CustID]-c.TotalExpenditure) > tolerance {
			r.fail("customer %s total expenditure %.2f, transactions sum to %.2f", c.CustID, c.TotalExpenditure, spendByCust[c.CustID])
		}
	}

	r.PromoLift = promoLift(ds, eventDate)
	return r
}

func (r *Report) fail(format string, args ...any) {
	r.Violations = append(r.Violations, fmt.Sprintf(format, args...))
}

// promoLift reports average amounts on promo vs normal days per branch.
func promoLift(ds *models.Dataset, eventDate map[string]string) []BranchLift {
	promoDays := make(map[string]bool)
	branches := make(map[string]bool)
	for _, p := range ds.Promos {
		branches[p.BranchID] = true
		for _, d := range p.PromoDates {
			promoDays[p.BranchID+"|"+dateOf(d)] = true
		}
	}

	type acc struct {
		promoSum, normalSum float64
		promoN, normalN     int
	}
	byBranch := make(map[string]*acc)
	for _, t := range ds.Transactions {
		branches[t.BranchID] = true
		a := byBranch[t.BranchID]
		if a == nil {
			a = &acc{}
			byBranch[t.BranchID] = a
		}
		if promoDays[t.BranchID+"|"+eventDate[t.TransactionID]] {
			a.promoSum += t.TotalAmount
			a.promoN++
		} else {
			a.normalSum += t.TotalAmount
			a.normalN++
		}
	}

	ids := make([]string, 0, len(branches))
	for b := range branches {
		ids = append(ids, b)
	}
	sort.Strings(ids)

	lifts := make([]BranchLift, 0, len(ids))
	for _, b := range ids {
		l := BranchLift{BranchID: b}
		if a := byBranch[b]; a != nil {
			l.PromoN, l.NormalN = a.promoN, a.normalN
			if a.promoN > 0 {
				l.PromoAvg = a.promoSum / float64(a.promoN)
			}
			if a.normalN > 0 {
				l.NormalAvg = a.normalSum / float64(a.normalN)
			}
		}
		lifts = append(lifts, l)
	}
	return lifts
}

var (
	okStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	badStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
)

// Render formats the report for the terminal.
func (r *Report) Render() string {
	var b strings.Builder

	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"checked %d transactions, %d line items, %d payments, %d customers, %d full-day closures",
		r.Transactions, r.LineItems, r.Payments, r.Customers, r.FullDayWindows)))
	b.WriteString("\n")

	for _, l := range r.PromoLift {
		b.WriteString(dimStyle.Render(fmt.Sprintf(
			"  %s | promo avg %.2f (%d) | normal avg %.2f (%d)",
			l.BranchID, l.PromoAvg, l.PromoN, l.NormalAvg, l.NormalN)))
		b.WriteString("\n")
	}

	if r.OK() {
		b.WriteString(okStyle.Render("✓ all checks passed"))
		b.WriteString("\n")
		return b.String()
	}

	for _, v := range r.Violations {
		b.WriteString(badStyle.Render("✗ " + v))
		b.WriteString("\n")
	}
	return b.String()
}

// dateOf truncates a "YYYY-MM-DD HH:MM:SS" timestamp to its date part.
func dateOf(ts string) string {
	if i := strings.IndexByte(ts, ' '); i > 0 {
		return ts[:i]
	}
	return ts
}

// sameSet compares two id lists ignoring order.
func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, s := range a {
		seen[s]++
	}
	for _, s := range b {
		seen[s]--
		if seen[s] < 0 {
			return false
		}
	}
	return true
}
