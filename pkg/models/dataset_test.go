package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteEmptyCollectionsAsArrays(t *testing.T) {
	dir := t.TempDir()
	ds := &Dataset{
		Customers:      []Customer{},
		LineItems:      []LineItem{},
		Transactions:   []Transaction{},
		Payments:       []Payment{},
		Promos:         []Promo{},
		Unavailability: []Unavailability{},
	}
	if err := ds.Write(dir); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// Consumers expect arrays, never null.
	for _, name := range []string{TransactionsFile, LineItemsFile, CustomersFile, PaymentsFile, PromosFile, UnavailabilityFile} {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if strings.TrimSpace(string(raw)) != "[]" {
			t.Errorf("%s = %q, want []", name, raw)
		}
	}
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	out := "2025-09-10 11:22:33"
	ds := &Dataset{
		Customers: []Customer{{CustID: "CUST-2-1", CustName: "Ana Cruz", TotalServices: 4, TotalExpenditure: 650}},
		LineItems: []LineItem{{
			LineItemID:    "2025-09-00001-001-SMVAL",
			TransactionID: "2025-09-00001-SMVAL",
			Services:      []LineItemService{{ServiceID: "SERVICE-1", Quantity: 2}},
		}},
		Transactions: []Transaction{{
			TransactionID: "2025-09-00001-SMVAL",
			LineItemID:    []string{"2025-09-00001-001-SMVAL"},
			DateOut:       &out,
			PaymentStatus: StatusPaid,
			Payments:      []string{"PAY-1-SMVAL"},
		}},
		Payments:       []Payment{{PaymentID: "PAY-1-SMVAL", TransactionID: "2025-09-00001-SMVAL", PaymentAmount: 650}},
		Promos:         []Promo{},
		Unavailability: []Unavailability{},
	}
	if err := ds.Write(dir); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Customers[0].CustID != "CUST-2-1" {
		t.Errorf("customer lost in round trip: %+v", got.Customers[0])
	}
	if got.Transactions[0].DateOut == nil || *got.Transactions[0].DateOut != out {
		t.Errorf("date_out lost in round trip")
	}
	if got.Payments[0].PaymentAmount != 650 {
		t.Errorf("payment amount lost in round trip")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("expected error for missing files")
	}
}
