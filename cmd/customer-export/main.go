// Command customer-export writes a customer list to PDF without starting the UI.
//
//	customer-export -in customers.json -search Kim -o kim.pdf
//
// Without -in the built-in sample customers are used.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ytget/customer-list/internal/config"
	"github.com/ytget/customer-list/internal/customers"
	"github.com/ytget/customer-list/internal/logging"
	"github.com/ytget/customer-list/internal/model"
	"github.com/ytget/customer-list/internal/report"
)

func main() {
	in := flag.String("in", "", "JSON file with an array of {id, name, company}")
	out := flag.String("o", "customers.pdf", "output PDF path")
	search := flag.String("search", "", "only export customers whose name contains this text")
	flag.Parse()

	env, _ := config.LoadEnv()
	logger, err := logging.New(env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(*in, *out, *search, env.PDFFontPath, logger); err != nil {
		logger.Error("export failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(in, out, search, fontPath string, logger *zap.Logger) error {
	initial := model.SampleCustomers()
	if in != "" {
		loaded, err := readCustomers(in)
		if err != nil {
			return err
		}
		initial = loaded
	}

	manager := customers.NewManager(initial, logger)
	manager.SetSearchTerm(search)

	var buf bytes.Buffer
	exporter := report.NewPDFExporter(report.DefaultLabels(), fontPath)
	if err := exporter.Export(&buf, manager.FilteredView()); err != nil {
		return err
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	logger.Info("customers exported",
		zap.String("path", out),
		zap.Int("count", manager.FilteredCount()),
		zap.Int("total", manager.Len()))
	return nil
}

func readCustomers(path string) ([]model.Customer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var list []model.Customer
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := model.ValidateIDs(list); err != nil {
		return nil, fmt.Errorf("invalid customers in %s: %w", path, err)
	}
	return list, nil
}
