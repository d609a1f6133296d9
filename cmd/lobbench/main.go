package main

import (
	"flag"
	"log"

	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/yanun0323/logs"
	"github.com/yanun0323/pkg/sys"

	"main/internal/bench"
	"main/internal/book"
	"main/internal/feed"
	"main/internal/obs"
	"main/internal/ops"
	"main/internal/results"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON config")
	orders := flag.Int("orders", 0, "Order count override (0=config)")
	seed := flag.Int64("seed", 0, "Workload seed override (0=config)")
	csvPath := flag.String("csv", "", "CSV output path override")
	jsonPath := flag.String("json", "", "JSON output path override")
	memReport := flag.Bool("mem-report", false, "Log heap/GC deltas per implementation")
	flag.Parse()

	cfg, err := ops.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if *orders > 0 {
		cfg.Feed.Orders = *orders
	}
	if *seed != 0 {
		cfg.Feed.Seed = *seed
	}
	if *csvPath != "" {
		cfg.CSVPath = *csvPath
	}
	if *jsonPath != "" {
		cfg.JSONPath = *jsonPath
	}

	if cfg.Pyroscope.ServerAddress != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: cfg.Pyroscope.ApplicationName,
			ServerAddress:   cfg.Pyroscope.ServerAddress,
			Logger:          emptyLogger{},
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileAllocSpace,
			},
		})
		if err != nil {
			log.Fatalf("pyroscope start failed: %v", err)
		}
		defer func() {
			_ = profiler.Stop()
		}()
	}

	workload, err := feed.Generate(cfg.Feed)
	if err != nil {
		log.Fatalf("workload generation failed: %v", err)
	}
	logs.Infof("workload ready: orders=%d modifies=%d deletes=%d seed=%d",
		len(workload.Adds), len(workload.Modifies), len(workload.Deletes), cfg.Feed.Seed)

	runs := []struct {
		name string
		run  func() (bench.Samples, error)
	}{
		{"Map-based", func() (bench.Samples, error) {
			return bench.Run(book.NewMapBook(), workload, cfg.Bench)
		}},
		{"Vector (binary search)", func() (bench.Samples, error) {
			return bench.Run(book.NewVectorBook(), workload, cfg.Bench)
		}},
		{"Reverse vector", func() (bench.Samples, error) {
			return bench.Run(book.NewReverseVectorBook(), workload, cfg.Bench)
		}},
		{"Linear search", func() (bench.Samples, error) {
			return bench.Run(book.NewLinearBook(), workload, cfg.Bench)
		}},
	}

	rows := make([]bench.Row, 0, len(runs))
	for _, r := range runs {
		if interrupted() {
			logs.Info("interrupted, skipping remaining implementations")
			break
		}

		var span obs.MemorySpan
		if *memReport {
			span.Start()
		}
		samples, err := r.run()
		if err != nil {
			log.Fatalf("benchmark failed for %s: %v", r.name, err)
		}
		if *memReport {
			span.Stop()
			logs.Infof("%s memory: %s", r.name, span.String())
		}

		row := samples.Summarize(r.name)
		logRow(row)
		rows = append(rows, row)
	}

	if err := bench.WriteCSV(cfg.CSVPath, rows); err != nil {
		log.Fatalf("csv write failed: %v", err)
	}
	logs.Infof("results written to %s", cfg.CSVPath)

	if cfg.JSONPath != "" {
		if err := bench.WriteJSON(cfg.JSONPath, rows); err != nil {
			log.Fatalf("json write failed: %v", err)
		}
		logs.Infof("results written to %s", cfg.JSONPath)
	}

	if cfg.Postgres.Host != "" {
		store, err := results.Open(cfg.Postgres)
		if err != nil {
			log.Fatalf("results store open failed: %v", err)
		}
		defer store.Close()
		if err := store.Save(rows, cfg.Feed.Orders, cfg.Feed.Seed); err != nil {
			log.Fatalf("results store save failed: %v", err)
		}
		logs.Infof("results persisted to postgres")
	}
}

func interrupted() bool {
	select {
	case <-sys.Shutdown():
		return true
	default:
		return false
	}
}

func logRow(row bench.Row) {
	logs.Infof("%s add(us): mean=%.1f median=%.1f stddev=%.1f min=%.1f max=%.1f",
		row.Implementation, row.Add.Mean, row.Add.Median, row.Add.StdDev, row.Add.Min, row.Add.Max)
	logs.Infof("%s modify(us): mean=%.1f median=%.1f stddev=%.1f min=%.1f max=%.1f",
		row.Implementation, row.Modify.Mean, row.Modify.Median, row.Modify.StdDev, row.Modify.Min, row.Modify.Max)
	logs.Infof("%s delete(us): mean=%.1f median=%.1f stddev=%.1f min=%.1f max=%.1f",
		row.Implementation, row.Delete.Mean, row.Delete.Median, row.Delete.StdDev, row.Delete.Min, row.Delete.Max)
	logs.Infof("%s best(ns): mean=%.1f median=%.1f stddev=%.1f min=%.1f max=%.1f",
		row.Implementation, row.BestPrice.Mean, row.BestPrice.Median, row.BestPrice.StdDev, row.BestPrice.Min, row.BestPrice.Max)
}

type emptyLogger struct{}

func (emptyLogger) Infof(_ string, _ ...interface{})  {}
func (emptyLogger) Debugf(_ string, _ ...interface{}) {}
func (emptyLogger) Errorf(_ string, _ ...interface{}) {}
