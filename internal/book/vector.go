package book

import "main/pkg/exception"

// VectorBook keeps each ladder in a contiguous slice sorted best-first:
// bids descending, asks ascending. Levels are located by binary search
// and inserted or erased in place with a tail shift.
type VectorBook struct {
	orders orderIndex
	bids   ladder
	asks   ladder
}

func NewVectorBook() *VectorBook {
	return &VectorBook{orders: newOrderIndex()}
}

func (b *VectorBook) AddOrder(id OrderID, side Side, price Price, volume Volume) error {
	if err := b.orders.add(id, Order{Side: side, Price: price, Volume: volume}); err != nil {
		return err
	}

	if side == Bid {
		i := b.bids.searchDesc(price)
		if b.bids.hasAt(i, price) {
			b.bids[i].Volume += volume
		} else {
			b.bids.insertAt(i, Level{Price: price, Volume: volume})
		}
	} else {
		i := b.asks.searchAsc(price)
		if b.asks.hasAt(i, price) {
			b.asks[i].Volume += volume
		} else {
			b.asks.insertAt(i, Level{Price: price, Volume: volume})
		}
	}

	return nil
}

func (b *VectorBook) ModifyOrder(id OrderID, volume Volume) error {
	o, err := b.orders.get(id)
	if err != nil {
		return err
	}

	delta := volume - o.Volume
	o.Volume = volume
	b.orders.put(id, o)

	if o.Side == Bid {
		i := b.bids.searchDesc(o.Price)
		if !b.bids.hasAt(i, o.Price) {
			return exception.ErrBookMissingLevel
		}
		b.bids[i].Volume += delta
	} else {
		i := b.asks.searchAsc(o.Price)
		if !b.asks.hasAt(i, o.Price) {
			return exception.ErrBookMissingLevel
		}
		b.asks[i].Volume += delta
	}

	return nil
}

func (b *VectorBook) DeleteOrder(id OrderID) error {
	o, err := b.orders.get(id)
	if err != nil {
		return err
	}

	if o.Side == Bid {
		i := b.bids.searchDesc(o.Price)
		if !b.bids.hasAt(i, o.Price) {
			return exception.ErrBookMissingLevel
		}
		b.bids[i].Volume -= o.Volume
		if b.bids[i].Volume <= 0 {
			b.bids.removeAt(i)
		}
	} else {
		i := b.asks.searchAsc(o.Price)
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

func (b *VectorBook) BestPrices() (BestPrices, error) {
	if len(b.bids) == 0 || len(b.asks) == 0 {
		return BestPrices{}, exception.ErrBookEmptySide
	}
	return BestPrices{Bid: b.bids[0].Price, Ask: b.asks[0].Price}, nil
}

func (b *VectorBook) Levels(side Side) []Level {
	if side == Bid {
		return b.bids.snapshot()
	}
	return b.asks.snapshot()
}

func (b *VectorBook) Clear() {
	b.orders.reset()
	b.bids = b.bids[:0]
	b.asks = b.asks[:0]
}
