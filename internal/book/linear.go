package book

import "main/pkg/exception"

// LinearBook stores its ladders exactly like VectorBook but locates
// levels by linear scan. Baseline for ladders small enough that a
// branch-predictable scan beats binary search.
type LinearBook struct {
	orders orderIndex
	bids   ladder
	asks   ladder
}

func NewLinearBook() *LinearBook {
	return &LinearBook{orders: newOrderIndex()}
}

func (b *LinearBook) AddOrder(id OrderID, side Side, price Price, volume Volume) error {
	if err := b.orders.add(id, Order{Side: side, Price: price, Volume: volume}); err != nil {
		return err
	}

	if side == Bid {
		i := b.bids.scanDesc(price)
		if b.bids.hasAt(i, price) {
			b.bids[i].Volume += volume
		} else {
			b.bids.insertAt(i, Level{Price: price, Volume: volume})
		}
	} else {
		i := b.asks.scanAsc(price)
		if b.asks.hasAt(i, price) {
			b.asks[i].Volume += volume
		} else {
			b.asks.insertAt(i, Level{Price: price, Volume: volume})
		}
	}

	return nil
}

func (b *LinearBook) ModifyOrder(id OrderID, volume Volume) error {
	o, err := b.orders.get(id)
	if err != nil {
		return err
	}

	delta := volume - o.Volume
	o.Volume = volume
	b.orders.put(id, o)

	side := b.side(o.Side)
	i := side.scanExact(o.Price)
	if i < 0 {
		return exception.ErrBookMissingLevel
	}
	(*side)[i].Volume += delta

	return nil
}

func (b *LinearBook) DeleteOrder(id OrderID) error {
	o, err := b.orders.get(id)
	if err != nil {
		return err
	}

	side := b.side(o.Side)
	i := side.scanExact(o.Price)
	if i < 0 {
		return exception.ErrBookMissingLevel
	}
	(*side)[i].Volume -= o.Volume
	if (*side)[i].Volume <= 0 {
		side.removeAt(i)
	}

	b.orders.remove(id)
	return nil
}

func (b *LinearBook) BestPrices() (BestPrices, error) {
	if len(b.bids) == 0 || len(b.asks) == 0 {
		return BestPrices{}, exception.ErrBookEmptySide
	}
	return BestPrices{Bid: b.bids[0].Price, Ask: b.asks[0].Price}, nil
}

func (b *LinearBook) Levels(side Side) []Level {
	if side == Bid {
		return b.bids.snapshot()
	}
	return b.asks.snapshot()
}

func (b *LinearBook) Clear() {
	b.orders.reset()
	b.bids = b.bids[:0]
	b.asks = b.asks[:0]
}

func (b *LinearBook) side(s Side) *ladder {
	if s == Bid {
		return &b.bids
	}
	return &b.asks
}
