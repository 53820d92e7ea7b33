package models

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Output file names, one JSON array per collection.
const (
	TransactionsFile   = "transactions.json"
	LineItemsFile      = "line_items.json"
	CustomersFile      = "customers.json"
	PaymentsFile       = "payments.json"
	PromosFile         = "promos.json"
	UnavailabilityFile = "unavailability.json"
)

// Dataset holds one full set of generated collections. Customers keep their
// creation order so seeded runs serialize identically.
type Dataset struct {
	Customers      []Customer
	LineItems      []LineItem
	Transactions   []Transaction
	Payments       []Payment
	Promos         []Promo
	Unavailability []Unavailability
}

// Write emits the six collections as pretty-printed JSON files under dir,
// creating it if needed.
func (d *Dataset) Write(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files := []struct {
		name string
		data any
	}{
		{TransactionsFile, d.Transactions},
		{LineItemsFile, d.LineItems},
		{CustomersFile, d.Customers},
		{PaymentsFile, d.Payments},
		{PromosFile, d.Promos},
		{UnavailabilityFile, d.Unavailability},
	}

	for _, f := range files {
		out, err := json.MarshalIndent(f.data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", f.name, err)
		}
		out = append(out, '\n')
		if err := os.WriteFile(filepath.Join(dir, f.name), out, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.name, err)
		}
	}
	return nil
}

// Load reads a previously written dataset back from dir.
func Load(dir string) (*Dataset, error) {
	d := &Dataset{}
	files := []struct {
		name string
		data any
	}{
		{TransactionsFile, &d.Transactions},
		{LineItemsFile, &d.LineItems},
		{CustomersFile, &d.Customers},
		{PaymentsFile, &d.Payments},
		{PromosFile, &d.Promos},
		{UnavailabilityFile, &d.Unavailability},
	}

	for _, f := range files {
		raw, err := os.ReadFile(filepath.Join(dir, f.name))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f.name, err)
		}
		if err := json.Unmarshal(raw, f.data); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", f.name, err)
		}
	}
	return d, nil
}
