package feed

import (
	"fmt"
	"math/rand"

	"main/internal/book"
)

// Config controls the synthetic workload shape. The defaults mirror a
// thin top-of-book instrument: ~1000 price points, small clip sizes.
type Config struct {
	Orders    int
	Seed      int64
	PriceMin  book.Price
	PriceMax  book.Price
	VolumeMin book.Volume
	VolumeMax book.Volume
}

func DefaultConfig(orders int, seed int64) Config {
	return Config{
		Orders:    orders,
		Seed:      seed,
		PriceMin:  1000,
		PriceMax:  2000,
		VolumeMin: 1,
		VolumeMax: 100,
	}
}

func (cfg Config) validate() error {
	if cfg.Orders <= 0 {
		return fmt.Errorf("orders must be > 0, got %d", cfg.Orders)
	}
	if cfg.PriceMin > cfg.PriceMax {
		return fmt.Errorf("price range inverted: [%d, %d]", cfg.PriceMin, cfg.PriceMax)
	}
	if cfg.VolumeMin <= 0 || cfg.VolumeMin > cfg.VolumeMax {
		return fmt.Errorf("volume range invalid: [%d, %d]", cfg.VolumeMin, cfg.VolumeMax)
	}
	return nil
}

// Add is one addOrder instruction.
type Add struct {
	ID     book.OrderID
	Side   book.Side
	Price  book.Price
	Volume book.Volume
}

// Modify is one modifyOrder instruction.
type Modify struct {
	ID     book.OrderID
	Volume book.Volume
}

// Workload is a full replay sequence: all adds, then all modifies on
// ids 1..N/2, then all deletes on ids 1..N/3. The ordering guarantees
// every modify and delete targets a live order.
type Workload struct {
	Adds     []Add
	Modifies []Modify
	Deletes  []book.OrderID
}

// Generate builds a deterministic workload from the seed.
func Generate(cfg Config) (Workload, error) {
	if err := cfg.validate(); err != nil {
		return Workload{}, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	priceSpan := int64(cfg.PriceMax-cfg.PriceMin) + 1
	volumeSpan := int64(cfg.VolumeMax-cfg.VolumeMin) + 1

	w := Workload{
		Adds:     make([]Add, 0, cfg.Orders),
		Modifies: make([]Modify, 0, cfg.Orders/2),
		Deletes:  make([]book.OrderID, 0, cfg.Orders/3),
	}

	for id := 1; id <= cfg.Orders; id++ {
		side := book.Bid
		if rng.Int63n(2) == 1 {
			side = book.Ask
		}
		w.Adds = append(w.Adds, Add{
			ID:     book.OrderID(id),
			Side:   side,
			Price:  cfg.PriceMin + book.Price(rng.Int63n(priceSpan)),
			Volume: cfg.VolumeMin + book.Volume(rng.Int63n(volumeSpan)),
		})
	}

	for id := 1; id <= cfg.Orders/2; id++ {
		w.Modifies = append(w.Modifies, Modify{
			ID:     book.OrderID(id),
			Volume: cfg.VolumeMin + book.Volume(rng.Int63n(volumeSpan)),
		})
	}

	for id := 1; id <= cfg.Orders/3; id++ {
		w.Deletes = append(w.Deletes, book.OrderID(id))
	}

	return w, nil
}
