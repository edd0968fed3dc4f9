// Package export writes checklists and budget comparisons as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"studyabroad/departure-planner/internal/budget"
	"studyabroad/departure-planner/internal/currencyutils"
	"studyabroad/departure-planner/internal/fileutils"
	"studyabroad/departure-planner/internal/models"
)

var log = logrus.New()

// Delimiter is the field separator used by the writers.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// ComparisonRow is the CSV layout of one comparison result.
type ComparisonRow struct {
	Category   string `csv:"Category"`
	MyValue    string `csv:"MyValue"`
	Benchmark  string `csv:"Benchmark"`
	Difference string `csv:"Difference"`
	Percent    string `csv:"Percent"`
	Verdict    string `csv:"Verdict"`
}

func newWriter(w io.Writer) *gocsv.SafeCSVWriter {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter
	return gocsv.NewSafeCSVWriter(csvWriter)
}

// WriteChecklistCSV writes items in collection order.
func WriteChecklistCSV(w io.Writer, items []models.ChecklistItem) error {
	if items == nil {
		items = []models.ChecklistItem{}
	}
	if err := gocsv.MarshalCSV(items, newWriter(w)); err != nil {
		return fmt.Errorf("error writing checklist CSV: %w", err)
	}
	log.WithField("count", len(items)).Debug("Wrote checklist CSV")
	return nil
}

// ReadChecklistCSV parses a checklist previously written by WriteChecklistCSV.
func ReadChecklistCSV(r io.Reader) ([]models.ChecklistItem, error) {
	var items []models.ChecklistItem
	if err := gocsv.Unmarshal(r, &items); err != nil {
		return nil, fmt.Errorf("error parsing checklist CSV: %w", err)
	}
	return items, nil
}

// WriteComparisonCSV writes one row per result, amounts with two decimals.
func WriteComparisonCSV(w io.Writer, results []models.ComparisonResult) error {
	rows := make([]ComparisonRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, ComparisonRow{
			Category:   string(r.Category),
			MyValue:    r.MyValue.StringFixed(2),
			Benchmark:  r.BenchmarkValue.StringFixed(2),
			Difference: r.AbsoluteDiff.StringFixed(2),
			Percent:    currencyutils.FormatPercent(r.PercentDiff),
			Verdict:    string(budget.VerdictFor(r)),
		})
	}
	if err := gocsv.MarshalCSV(rows, newWriter(w)); err != nil {
		return fmt.Errorf("error writing comparison CSV: %w", err)
	}
	log.WithField("count", len(rows)).Debug("Wrote comparison CSV")
	return nil
}

// WriteFile creates path and fills it with write.
func WriteFile(path string, write func(io.Writer) error) error {
	file, err := fileutils.CreateFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := write(file); err != nil {
		return err
	}
	log.WithField("output_file", path).Info("Export written")
	return nil
}
