package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// kv is one displayed result row. Keeping rows ordered makes the CSV output
// stable.
type kv struct {
	key   string
	value string
}

func kvFloat(key string, v float64) kv {
	return kv{key: key, value: strconv.FormatFloat(v, 'f', -1, 64)}
}

func kvMoney(key string, v float64) kv {
	return kv{key: key, value: strconv.FormatFloat(v, 'f', 2, 64)}
}

func kvInt(key string, v int) kv {
	return kv{key: key, value: strconv.Itoa(v)}
}

func kvString(key, v string) kv {
	return kv{key: key, value: v}
}

// printResults writes the rows to stdout, and to outputPath as key/value CSV
// when set.
func printResults(rows []kv, outputPath string) error {
	width := 0
	for _, row := range rows {
		if len(row.key) > width {
			width = len(row.key)
		}
	}
	for _, row := range rows {
		fmt.Printf("  %-*s  %s\n", width, row.key, row.value)
	}

	if outputPath == "" {
		return nil
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, row := range rows {
		if err := w.Write([]string{row.key, row.value}); err != nil {
			return fmt.Errorf("write output file: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}
