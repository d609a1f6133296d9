package book

import "main/pkg/exception"

// ReverseVectorBook inverts the vector layout: bids ascending, asks
// descending, so the best price of each side sits at the back of its
// slice. Touching the top of book then erases at the tail with no
// shift, which can win on workloads concentrated near the best price.
type ReverseVectorBook struct {
	orders orderIndex
	bids   ladder
	asks   ladder
}

func NewReverseVectorBook() *ReverseVectorBook {
	return &ReverseVectorBook{orders: newOrderIndex()}
}

func (b *ReverseVectorBook) AddOrder(id OrderID, side Side, price Price, volume Volume) error {
	if err := b.orders.add(id, Order{Side: side, Price: price, Volume: volume}); err != nil {
		return err
	}

	if side == Bid {
		i := b.bids.searchAsc(price)
		if b.bids.hasAt(i, price) {
			b.bids[i].Volume += volume
		} else {
			b.bids.insertAt(i, Level{Price: price, Volume: volume})
		}
	} else {
		i := b.asks.searchDesc(price)
		if b.asks.hasAt(i, price) {
			b.asks[i].Volume += volume
		} else {
			b.asks.insertAt(i, Level{Price: price, Volume: volume})
		}
	}

	return nil
}

func (b *ReverseVectorBook) ModifyOrder(id OrderID, volume Volume) error {
	o, err := b.orders.get(id)
	if err != nil {
		return err
	}

	delta := volume - o.Volume
	o.Volume = volume
	b.orders.put(id, o)

	if o.Side == Bid {
		i := b.bids.searchAsc(o.Price)
		if !b.bids.hasAt(i, o.Price) {
			return exception.ErrBookMissingLevel
		}
		b.bids[i].Volume += delta
	} else {
		i := b.asks.searchDesc(o.Price)
		if !b.asks.hasAt(i, o.Price) {
			return exception.ErrBookMissingLevel
		}
		b.asks[i].Volume += delta
	}

	return nil
}

func (b *ReverseVectorBook) DeleteOrder(id OrderID) error {
	o, err := b.orders.get(id)
	if err != nil {
		return err
	}

	if o.Side == Bid {
		i := b.bids.searchAsc(o.Price)
		if !b.bids.hasAt(i, o.Price) {
			return exception.ErrBookMissingLevel
		}
		b.bids[i].Volume -= o.Volume
		if b.bids[i].Volume <= 0 {
			b.bids.removeAt(i)
		}
	} else {
		i := b.asks.searchDesc(o.Price)
		if !b.asks.hasAt(i, o.Price) {
			return exception.ErrBookMissingLevel
		}
		b.asks[i].Volume -= o.Volume
		if b.asks[i].Volume <= 0 {
			b.asks.removeAt(i)
		}
	}

	b.orders.remove(id)
	return nil
}

func (b *ReverseVectorBook) BestPrices() (BestPrices, error) {
	if len(b.bids) == 0 || len(b.asks) == 0 {
		return BestPrices{}, exception.ErrBookEmptySide
	}
	return BestPrices{
		Bid: b.bids[len(b.bids)-1].Price,
		Ask: b.asks[len(b.asks)-1].Price,
	}, nil
}

func (b *ReverseVectorBook) Levels(side Side) []Level {
	if side == Bid {
		return b.bids.snapshotReversed()
	}
	return b.asks.snapshotReversed()
}

func (b *ReverseVectorBook) Clear() {
	b.orders.reset()
	b.bids = b.bids[:0]
	b.asks = b.asks[:0]
}
