package revenue

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

// Recognized aliases per field. Inputs come from more than one exporter, so
// lookups fall through this fixed list in order.
var (
	transactionIDKeys = []string{"transaction_id", "transactionId"}
	amountKeys        = []string{"payment_amount", "amount", "payment"}
	branchKeys        = []string{"branch_id", "branchId", "branch"}
)

// Ambiguous date strings fall through these layouts; if none matches, the row
// is skipped rather than failing the run.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Clean reads transaction and payment JSON arrays and writes a CSV of
// completed transactions (date_out present and parseable) with revenue equal
// to the sum of their payments.
func Clean(transactionsPath, paymentsPath, outPath string, logger *log.Logger) error {
	transactions, err := readRecords(transactionsPath)
	if err != nil {
		return err
	}
	payments, err := readRecords(paymentsPath)
	if err != nil {
		return err
	}

	paymentsByTx := make(map[string]float64)
	for _, p := range payments {
		txID := stringField(p, transactionIDKeys)
		if txID == "" {
			continue
		}
		paymentsByTx[txID] += numberField(p, amountKeys)
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write([]string{"date_time", "transaction_id", "revenue", "branch_id"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	rows := 0
	for _, t := range transactions {
		dateOut, ok := t["date_out"].(string)
		if !ok || dateOut == "" || dateOut == "null" {
			continue
		}
		parsed, ok := parseDate(dateOut)
		if !ok {
			logger.Debug("unparseable date_out, skipping row", "value", dateOut)
			continue
		}

		txID := stringField(t, transactionIDKeys)
		branch := stringField(t, branchKeys)
		revenue := round2(paymentsByTx[txID])

		record := []string{
			parsed.Format("2006-01-02T15:04:05"),
			txID,
			fmt.Sprintf("%.2f", revenue),
			branch,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
		rows++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	logger.Info("wrote cleaned revenue csv", "path", outPath, "rows", rows)
	return nil
}

func readRecords(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}

func parseDate(v string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// stringField returns the first non-empty alias value, stringified.
func stringField(m map[string]any, keys []string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case nil:
			continue
		case string:
			if v != "" {
				return v
			}
		default:
			return fmt.Sprintf("%v", v)
		}
	}
	return ""
}

// numberField returns the first alias value that parses as a number, else 0.
func numberField(m map[string]any, keys []string) float64 {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return v
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
	}
	return 0
}
