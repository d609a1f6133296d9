package results

import (
	"time"

	"github.com/yanun0323/errors"

	"main/internal/bench"
	"main/internal/ops"
	"main/pkg/conn"
)

// Record is one implementation's summarized result persisted per run.
// Mutation phase stats are microseconds per cycle, best-price stats
// nanoseconds per call.
type Record struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	RunAt          time.Time `gorm:"index"`
	Implementation string    `gorm:"index"`
	Orders         int
	Seed           int64

	AddMean   float64
	AddMedian float64
	AddStdDev float64
	AddMin    float64
	AddMax    float64

	ModifyMean   float64
	ModifyMedian float64
	ModifyStdDev float64
	ModifyMin    float64
	ModifyMax    float64

	DeleteMean   float64
	DeleteMedian float64
	DeleteStdDev float64
	DeleteMin    float64
	DeleteMax    float64

	BestPriceMean   float64
	BestPriceMedian float64
	BestPriceStdDev float64
	BestPriceMin    float64
	BestPriceMax    float64
}

func (Record) TableName() string {
	return "orderbook_benchmark_results"
}

// Store persists benchmark rows to PostgreSQL.
type Store struct {
	client *conn.Client
}

// Open connects and migrates the results table.
func Open(cfg ops.PostgresConfig) (*Store, error) {
	client, err := conn.New(conn.Option{
		Host:     cfg.Host,
		Port:     cfg.Port,
		User:     cfg.User,
		Password: cfg.Password,
		Database: cfg.Database,
		SSLMode:  cfg.SSLMode,
	})
	if err != nil {
		return nil, errors.Wrap(err, "connect postgres")
	}
	if err := client.DB().AutoMigrate(&Record{}); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "migrate results table")
	}
	return &Store{client: client}, nil
}

// Save writes one record per report row, all stamped with the same
// run time.
func (s *Store) Save(rows []bench.Row, orders int, seed int64) error {
	if len(rows) == 0 {
		return nil
	}

	runAt := time.Now().UTC()
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, newRecord(row, runAt, orders, seed))
	}

	if err := s.client.DB().Create(&records).Error; err != nil {
		return errors.Wrap(err, "insert results")
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.client.Close()
}

func newRecord(row bench.Row, runAt time.Time, orders int, seed int64) Record {
	return Record{
		RunAt:          runAt,
		Implementation: row.Implementation,
		Orders:         orders,
		Seed:           seed,

		AddMean:   row.Add.Mean,
		AddMedian: row.Add.Median,
		AddStdDev: row.Add.StdDev,
		AddMin:    row.Add.Min,
		AddMax:    row.Add.Max,

		ModifyMean:   row.Modify.Mean,
		ModifyMedian: row.Modify.Median,
		ModifyStdDev: row.Modify.StdDev,
		ModifyMin:    row.Modify.Min,
		ModifyMax:    row.Modify.Max,

		DeleteMean:   row.Delete.Mean,
		DeleteMedian: row.Delete.Median,
		DeleteStdDev: row.Delete.StdDev,
		DeleteMin:    row.Delete.Min,
		DeleteMax:    row.Delete.Max,

		BestPriceMean:   row.BestPrice.Mean,
		BestPriceMedian: row.BestPrice.Median,
		BestPriceStdDev: row.BestPrice.StdDev,
		BestPriceMin:    row.BestPrice.Min,
		BestPriceMax:    row.BestPrice.Max,
	}
}
