package revenue

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func runClean(t *testing.T, transactions, payments string) string {
	t.Helper()
	dir := t.TempDir()

	txPath := filepath.Join(dir, "transactions.json")
	payPath := filepath.Join(dir, "payments.json")
	outPath := filepath.Join(dir, "cleaned.csv")
	if err := os.WriteFile(txPath, []byte(transactions), 0o644); err != nil {
		t.Fatalf("write transactions: %v", err)
	}
	if err := os.WriteFile(payPath, []byte(payments), 0o644); err != nil {
		t.Fatalf("write payments: %v", err)
	}

	if err := Clean(txPath, payPath, outPath, log.New(io.Discard)); err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return string(out)
}

func TestCleanSumsPayments(t *testing.T) {
	got := runClean(t,
		`[{"transaction_id":"T1","date_out":"2024-01-02T10:00:00","branch_id":"B1"}]`,
		`[{"transaction_id":"T1","payment_amount":100},{"transaction_id":"T1","payment_amount":50}]`)

	want := "date_time,transaction_id,revenue,branch_id\n2024-01-02T10:00:00,T1,150.00,B1\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCleanSkipsIncompleteTransactions(t *testing.T) {
	got := runClean(t,
		`[
			{"transaction_id":"T1","date_out":null,"branch_id":"B1"},
			{"transaction_id":"T2","date_out":"not a date","branch_id":"B1"},
			{"transaction_id":"T3","date_out":"2024-03-05 09:30:00","branch_id":"B2"}
		]`,
		`[{"transaction_id":"T3","payment_amount":75.5}]`)

	want := "date_time,transaction_id,revenue,branch_id\n2024-03-05T09:30:00,T3,75.50,B2\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCleanFieldAliases(t *testing.T) {
	got := runClean(t,
		`[{"transactionId":"T9","date_out":"2024-02-01","branch":"VAL-B-NCR"}]`,
		`[{"transactionId":"T9","amount":20},{"transactionId":"T9","payment":"10.5"}]`)

	want := "date_time,transaction_id,revenue,branch_id\n2024-02-01T00:00:00,T9,30.50,VAL-B-NCR\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCleanNoPaymentsIsZeroRevenue(t *testing.T) {
	got := runClean(t,
		`[{"transaction_id":"T1","date_out":"2024-01-02T10:00:00","branch_id":"B1"}]`,
		`[]`)

	if !strings.Contains(got, "T1,0.00,B1") {
		t.Errorf("expected zero revenue row, got %q", got)
	}
}
