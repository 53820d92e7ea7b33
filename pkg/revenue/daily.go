package revenue

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"
)

// DailyToJSON reshapes a daily revenue CSV (date, branch_id, total_revenue)
// into a JSON array with one object per date, keyed by branch id plus a total.
// Every observed branch appears on every date, zero when absent.
func DailyToJSON(csvPath, outPath string, logger *log.Logger) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", csvPath, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("failed to read csv header: %w", err)
	}

	dateIdx, branchIdx, revenueIdx := -1, -1, -1
	for i, h := range header {
		switch h {
		case "date":
			dateIdx = i
		case "branch_id":
			branchIdx = i
		case "total_revenue":
			revenueIdx = i
		}
	}
	if dateIdx == -1 || branchIdx == -1 || revenueIdx == -1 {
		return fmt.Errorf("csv missing required columns date, branch_id, total_revenue")
	}

	rows, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read csv rows: %w", err)
	}

	byDate := make(map[string]map[string]float64)
	branches := make(map[string]bool)
	for _, row := range rows {
		date := row[dateIdx]
		branch := row[branchIdx]
		// Malformed numerics default to zero.
		value, _ := strconv.ParseFloat(row[revenueIdx], 64)

		if byDate[date] == nil {
			byDate[date] = make(map[string]float64)
		}
		byDate[date][branch] = round2(value)
		branches[branch] = true
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	branchIDs := make([]string, 0, len(branches))
	for b := range branches {
		branchIDs = append(branchIDs, b)
	}
	sort.Strings(branchIDs)

	entries := make([]map[string]any, 0, len(dates))
	for _, d := range dates {
		entry := map[string]any{"date": d}
		total := 0.0
		for _, b := range branchIDs {
			v := byDate[d][b]
			entry[b] = round2(v)
			total += v
		}
		entry["total"] = round2(total)
		entries = append(entries, entry)
	}

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal daily revenue: %w", err)
	}
	out = append(out, '\n')

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	logger.Info("wrote daily revenue json", "path", outPath, "dates", len(entries))
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
