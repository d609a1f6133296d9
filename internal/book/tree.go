package book

import (
	"github.com/google/btree"

	"main/pkg/exception"
)

// treeDegree is the btree branching factor. 32 keeps a ~1000-level
// ladder two nodes deep.
const treeDegree = 32

// MapBook keeps each ladder in a balanced ordered tree with opposite
// comparators per side, so the minimum item of either tree is always
// that side's best price.
type MapBook struct {
	orders orderIndex
	bids   *btree.BTreeG[Level]
	asks   *btree.BTreeG[Level]
}

func bidLess(a, b Level) bool { return a.Price > b.Price }
func askLess(a, b Level) bool { return a.Price < b.Price }

func NewMapBook() *MapBook {
	return &MapBook{
		orders: newOrderIndex(),
		bids:   btree.NewG(treeDegree, bidLess),
		asks:   btree.NewG(treeDegree, askLess),
	}
}

func (b *MapBook) AddOrder(id OrderID, side Side, price Price, volume Volume) error {
	if err := b.orders.add(id, Order{Side: side, Price: price, Volume: volume}); err != nil {
		return err
	}

	t := b.tree(side)
	if cur, ok := t.Get(Level{Price: price}); ok {
		cur.Volume += volume
		t.ReplaceOrInsert(cur)
	} else {
		t.ReplaceOrInsert(Level{Price: price, Volume: volume})
	}

	return nil
}

func (b *MapBook) ModifyOrder(id OrderID, volume Volume) error {
	o, err := b.orders.get(id)
	if err != nil {
		return err
	}

	delta := volume - o.Volume
	o.Volume = volume
	b.orders.put(id, o)

	t := b.tree(o.Side)
	cur, ok := t.Get(Level{Price: o.Price})
	if !ok {
		return exception.ErrBookMissingLevel
	}
	cur.Volume += delta
	t.ReplaceOrInsert(cur)

	return nil
}

func (b *MapBook) DeleteOrder(id OrderID) error {
	o, err := b.orders.get(id)
	if err != nil {
		return err
	}

	t := b.tree(o.Side)
	cur, ok := t.Get(Level{Price: o.Price})
	if !ok {
		return exception.ErrBookMissingLevel
	}
	cur.Volume -= o.Volume
	if cur.Volume <= 0 {
		t.Delete(cur)
	} else {
		t.ReplaceOrInsert(cur)
	}

	b.orders.remove(id)
	return nil
}

func (b *MapBook) BestPrices() (BestPrices, error) {
	bestBid, okBid := b.bids.Min()
	bestAsk, okAsk := b.asks.Min()
	if !okBid || !okAsk {
		return BestPrices{}, exception.ErrBookEmptySide
	}
	return BestPrices{Bid: bestBid.Price, Ask: bestAsk.Price}, nil
}

func (b *MapBook) Levels(side Side) []Level {
	t := b.tree(side)
	if t.Len() == 0 {
		return nil
	}
	out := make([]Level, 0, t.Len())
	t.Ascend(func(lv Level) bool {
		out = append(out, lv)
		return true
	})
	return out
}

func (b *MapBook) Clear() {
	b.orders.reset()
	b.bids.Clear(false)
	b.asks.Clear(false)
}

func (b *MapBook) tree(side Side) *btree.BTreeG[Level] {
	if side == Bid {
		return b.bids
	}
	return b.asks
}
