// Command seedports converts a UN/LOCODE Excel export into a SQL seed file
// for the port_codes reference table.
// Usage: go run ./cmd/seedports <locode.xlsx>
// Output: db/seeds/port_codes.sql
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

const batchSize = 500

type portEntry struct {
	code    string
	name    string
	country string
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Println("Usage: seedports <locode.xlsx>")
		os.Exit(1)
	}
	xlsxPath := os.Args[1]
	outPath := "db/seeds/port_codes.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := parseLocodeSheet(f)
	if err != nil {
		return fmt.Errorf("parse UN/LOCODE sheet: %w", err)
	}
	log.Printf("UN/LOCODE sheet: %d port entries", len(entries))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- Port code seed data generated from a UN/LOCODE export.",
		fmt.Sprintf("-- %d entries in batches of %d.", len(entries), batchSize),
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	for i := 0; i < len(entries); i += batchSize {
		end := i + batchSize
		if end > len(entries) {
			end = len(entries)
		}
		if err := writeBatch(out, entries[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}

	log.Printf("Generated %d entries (%d batches) in %s",
		len(entries), (len(entries)+batchSize-1)/batchSize, outPath)
	return nil
}

// parseLocodeSheet reads the first sheet of a UN/LOCODE export.
// Columns: B(1)=country code, C(2)=location code, D(3)=name, G(6)=function.
// Only entries with port function "1" are kept. Data starts at row index 1.
func parseLocodeSheet(f *excelize.File) ([]portEntry, error) {
	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var entries []portEntry
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 7 {
			continue
		}

		country := strings.TrimSpace(cellVal(row, 1))
		location := strings.TrimSpace(cellVal(row, 2))
		name := strings.TrimSpace(cellVal(row, 3))
		function := strings.TrimSpace(cellVal(row, 6))

		if len(country) != 2 || len(location) != 3 || name == "" {
			continue
		}
		if !strings.Contains(function, "1") {
			continue
		}

		code := country + location
		if seen[code] {
			continue
		}
		seen[code] = true
		entries = append(entries, portEntry{code: code, name: name, country: country})
	}
	return entries, nil
}

func writeBatch(out *os.File, batch []portEntry) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO port_codes (code, name, country) VALUES\n")

	for i := range batch {
		e := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  ('%s', '%s', '%s')",
			escapeSQL(e.code), escapeSQL(e.name), escapeSQL(e.country))
	}

	b.WriteString("\nON CONFLICT (code) DO NOTHING;\n")

	_, err := out.WriteString(b.String())
	return err
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
