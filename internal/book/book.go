package book

// Side marks which half of the book an order rests on.
type Side uint8

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	switch s {
	case Bid:
		return "bid"
	case Ask:
		return "ask"
	default:
		return "unknown"
	}
}

// OrderID is assigned by the caller and is unique for the lifetime of a book.
type OrderID uint64

// Price is a scaled integer. The scale is defined by configuration.
type Price int64

// Volume is a scaled integer. The scale is defined by configuration.
type Volume int64

// Order is the resting-order record held by the order index.
// Side and Price are fixed at creation; only Volume is mutable.
type Order struct {
	Side   Side
	Price  Price
	Volume Volume
}

// Level is one rung of a ladder: a price and the summed volume of all
// live orders resting at it. A level with aggregate <= 0 never survives
// a public call.
type Level struct {
	Price  Price
	Volume Volume
}

// BestPrices is a top-of-book snapshot. It is returned by value and is
// invalidated by the next mutation.
type BestPrices struct {
	Bid Price
	Ask Price
}

// Book is the contract shared by the four ladder representations. The
// implementations are behaviorally indistinguishable through this
// interface; they differ only in ladder layout and locate discipline.
type Book interface {
	// AddOrder inserts a new order and credits its volume to the
	// (side, price) level, creating the level if absent. Fails with
	// exception.ErrBookDuplicateOrder when the id is already live.
	AddOrder(id OrderID, side Side, price Price, volume Volume) error

	// ModifyOrder replaces the order's volume and adjusts its level
	// aggregate by the delta. Side and price never change.
	ModifyOrder(id OrderID, volume Volume) error

	// DeleteOrder debits the order's volume from its level, removes the
	// level when the aggregate drains to zero or below, and erases the
	// order record.
	DeleteOrder(id OrderID) error

	// BestPrices returns the highest bid and lowest ask. Fails with
	// exception.ErrBookEmptySide when either ladder is empty.
	BestPrices() (BestPrices, error)

	// Levels returns one side's ladder best-first. Diagnostic accessor
	// for verification; not part of the measured path.
	Levels(side Side) []Level

	// Clear empties all state. Previously issued ids become re-usable.
	Clear()
}
