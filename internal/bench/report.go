package bench

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/yanun0323/errors"
)

// Row is one implementation's summarized result.
type Row struct {
	Implementation string `json:"implementation"`
	Add            Stats  `json:"add"`
	Modify         Stats  `json:"modify"`
	Delete         Stats  `json:"delete"`
	BestPrice      Stats  `json:"bestPrice"`
}

// Summarize reduces per-cycle samples to a report row. Mutation phases
// are in microseconds, best-price in nanoseconds per call.
func (s Samples) Summarize(implementation string) Row {
	return Row{
		Implementation: implementation,
		Add:            Summarize(s.Add),
		Modify:         Summarize(s.Modify),
		Delete:         Summarize(s.Delete),
		BestPrice:      Summarize(s.BestPrice),
	}
}

var csvHeader = []string{
	"Implementation",
	"Add Mean", "Add Median", "Add StdDev", "Add Min", "Add Max",
	"Modify Mean", "Modify Median", "Modify StdDev", "Modify Min", "Modify Max",
	"Delete Mean", "Delete Median", "Delete StdDev", "Delete Min", "Delete Max",
	"BestPrice Mean", "BestPrice Median", "BestPrice StdDev", "BestPrice Min", "BestPrice Max",
}

// WriteCSV writes one row per implementation in the 21-column layout.
func WriteCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, row := range rows {
		if err := w.Write(row.record()); err != nil {
			return errors.Wrap(err, "write csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrap(err, "flush csv")
	}

	return nil
}

func (r Row) record() []string {
	rec := make([]string, 0, len(csvHeader))
	rec = append(rec, r.Implementation)
	for _, s := range []Stats{r.Add, r.Modify, r.Delete, r.BestPrice} {
		rec = append(rec,
			formatFloat(s.Mean),
			formatFloat(s.Median),
			formatFloat(s.StdDev),
			formatFloat(s.Min),
			formatFloat(s.Max),
		)
	}
	return rec
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteJSON writes the same rows as a JSON array.
func WriteJSON(path string, rows []Row) error {
	data, err := sonic.MarshalIndent(rows, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal rows")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "write json")
	}
	return nil
}
