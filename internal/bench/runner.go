package bench

import (
	"fmt"
	"time"

	"github.com/yanun0323/errors"

	"main/internal/book"
	"main/internal/feed"
)

// Config controls the measurement protocol. The defaults reproduce the
// reference protocol: 3 warmup cycles, 10 measured cycles, 1000
// best-price calls per sample.
type Config struct {
	WarmupRuns     int
	MeasuredRuns   int
	BestPriceCalls int
}

func DefaultConfig() Config {
	return Config{
		WarmupRuns:     3,
		MeasuredRuns:   10,
		BestPriceCalls: 1000,
	}
}

func (cfg Config) validate() error {
	if cfg.MeasuredRuns <= 0 {
		return fmt.Errorf("measured runs must be > 0, got %d", cfg.MeasuredRuns)
	}
	if cfg.WarmupRuns < 0 {
		return fmt.Errorf("warmup runs must be >= 0, got %d", cfg.WarmupRuns)
	}
	if cfg.BestPriceCalls <= 0 {
		return fmt.Errorf("best-price calls must be > 0, got %d", cfg.BestPriceCalls)
	}
	return nil
}

// Samples holds one value per measured cycle for the mutation phases
// (microseconds per phase) and the best-price query (nanoseconds per
// call, averaged over BestPriceCalls).
type Samples struct {
	Add       []float64
	Modify    []float64
	Delete    []float64
	BestPrice []float64
}

// Sink absorbs best-price results so the compiler cannot eliminate the
// measured loop. Read it after the run, never during.
var Sink int64

// Run plays the workload against one book implementation and samples
// each phase. The type parameter keeps the call sites monomorphic so
// dispatch overhead stays out of the measurement.
func Run[B book.Book](bk B, w feed.Workload, cfg Config) (Samples, error) {
	if err := cfg.validate(); err != nil {
		return Samples{}, err
	}

	for i := 0; i < cfg.WarmupRuns; i++ {
		if err := playCycle(bk, w); err != nil {
			return Samples{}, errors.Wrap(err, "warmup cycle")
		}
		bk.Clear()
	}

	s := Samples{
		Add:       make([]float64, 0, cfg.MeasuredRuns),
		Modify:    make([]float64, 0, cfg.MeasuredRuns),
		Delete:    make([]float64, 0, cfg.MeasuredRuns),
		BestPrice: make([]float64, 0, cfg.MeasuredRuns),
	}

	for i := 0; i < cfg.MeasuredRuns; i++ {
		start := time.Now()
		for _, a := range w.Adds {
			if err := bk.AddOrder(a.ID, a.Side, a.Price, a.Volume); err != nil {
				return Samples{}, errors.Wrap(err, "add phase")
			}
		}
		s.Add = append(s.Add, micros(time.Since(start)))

		start = time.Now()
		for _, m := range w.Modifies {
			if err := bk.ModifyOrder(m.ID, m.Volume); err != nil {
				return Samples{}, errors.Wrap(err, "modify phase")
			}
		}
		s.Modify = append(s.Modify, micros(time.Since(start)))

		start = time.Now()
		for _, id := range w.Deletes {
			if err := bk.DeleteOrder(id); err != nil {
				return Samples{}, errors.Wrap(err, "delete phase")
			}
		}
		s.Delete = append(s.Delete, micros(time.Since(start)))

		var acc int64
		start = time.Now()
		for j := 0; j < cfg.BestPriceCalls; j++ {
			best, err := bk.BestPrices()
			if err != nil {
				return Samples{}, errors.Wrap(err, "best-price phase")
			}
			acc += int64(best.Bid) ^ int64(best.Ask)
		}
		elapsed := time.Since(start)
		Sink += acc
		s.BestPrice = append(s.BestPrice, float64(elapsed.Nanoseconds())/float64(cfg.BestPriceCalls))

		bk.Clear()
	}

	return s, nil
}

func playCycle(bk book.Book, w feed.Workload) error {
	for _, a := range w.Adds {
		if err := bk.AddOrder(a.ID, a.Side, a.Price, a.Volume); err != nil {
			return err
		}
	}
	for _, m := range w.Modifies {
		if err := bk.ModifyOrder(m.ID, m.Volume); err != nil {
			return err
		}
	}
	for _, id := range w.Deletes {
		if err := bk.DeleteOrder(id); err != nil {
			return err
		}
	}
	return nil
}

func micros(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e3
}
