package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/pkg/exception"
)

var implementations = []struct {
	name string
	make func() Book
}{
	{"map", func() Book { return NewMapBook() }},
	{"vector", func() Book { return NewVectorBook() }},
	{"reverse-vector", func() Book { return NewReverseVectorBook() }},
	{"linear", func() Book { return NewLinearBook() }},
}

func TestAddThenBestPrices(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			bk := impl.make()
			require.NoError(t, bk.AddOrder(1, Bid, 1500, 10))
			require.NoError(t, bk.AddOrder(2, Ask, 1510, 5))

			best, err := bk.BestPrices()
			require.NoError(t, err)
			assert.Equal(t, BestPrices{Bid: 1500, Ask: 1510}, best)
		})
	}
}

func TestLevelAggregation(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			bk := impl.make()
			require.NoError(t, bk.AddOrder(1, Bid, 1500, 10))
			require.NoError(t, bk.AddOrder(2, Bid, 1500, 7))

			assert.Equal(t, []Level{{Price: 1500, Volume: 17}}, bk.Levels(Bid))
		})
	}
}

func TestModifyAdjustsAggregate(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			bk := impl.make()
			require.NoError(t, bk.AddOrder(1, Bid, 1500, 10))
			require.NoError(t, bk.AddOrder(2, Bid, 1500, 7))

			require.NoError(t, bk.ModifyOrder(1, 3))
			assert.Equal(t, []Level{{Price: 1500, Volume: 10}}, bk.Levels(Bid))
		})
	}
}

func TestDeleteDrainsLevel(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			bk := impl.make()
			require.NoError(t, bk.AddOrder(1, Ask, 1600, 4))
			require.NoError(t, bk.DeleteOrder(1))

			assert.Empty(t, bk.Levels(Ask))
			_, err := bk.BestPrices()
			assert.ErrorIs(t, err, exception.ErrBookEmptySide)
		})
	}
}

func TestMultiLevelBest(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			bk := impl.make()
			require.NoError(t, bk.AddOrder(1, Bid, 1500, 1))
			require.NoError(t, bk.AddOrder(2, Bid, 1501, 1))
			require.NoError(t, bk.AddOrder(3, Bid, 1499, 1))
			require.NoError(t, bk.AddOrder(4, Ask, 1600, 1))

			best, err := bk.BestPrices()
			require.NoError(t, err)
			assert.Equal(t, Price(1501), best.Bid)

			require.NoError(t, bk.DeleteOrder(2))
			best, err = bk.BestPrices()
			require.NoError(t, err)
			assert.Equal(t, Price(1500), best.Bid)

			require.NoError(t, bk.DeleteOrder(1))
			best, err = bk.BestPrices()
			require.NoError(t, err)
			assert.Equal(t, Price(1499), best.Bid)
		})
	}
}

func TestDuplicateOrderRejected(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			bk := impl.make()
			require.NoError(t, bk.AddOrder(1, Bid, 1500, 10))

			err := bk.AddOrder(1, Ask, 1510, 5)
			require.ErrorIs(t, err, exception.ErrBookDuplicateOrder)

			// The failed add must not touch any ladder.
			assert.Equal(t, []Level{{Price: 1500, Volume: 10}}, bk.Levels(Bid))
			assert.Empty(t, bk.Levels(Ask))
		})
	}
}

func TestMissingOrder(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			bk := impl.make()

			assert.ErrorIs(t, bk.ModifyOrder(99, 5), exception.ErrBookMissingOrder)
			assert.ErrorIs(t, bk.DeleteOrder(99), exception.ErrBookMissingOrder)
		})
	}
}

func TestBestPricesEmptySide(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			bk := impl.make()

			_, err := bk.BestPrices()
			assert.ErrorIs(t, err, exception.ErrBookEmptySide)

			require.NoError(t, bk.AddOrder(1, Bid, 1500, 10))
			_, err = bk.BestPrices()
			assert.ErrorIs(t, err, exception.ErrBookEmptySide)
		})
	}
}

func TestClearIdempotent(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			bk := impl.make()
			require.NoError(t, bk.AddOrder(1, Bid, 1500, 10))
			require.NoError(t, bk.AddOrder(2, Ask, 1510, 5))

			bk.Clear()
			bk.Clear()

			assert.Empty(t, bk.Levels(Bid))
			assert.Empty(t, bk.Levels(Ask))
			_, err := bk.BestPrices()
			assert.ErrorIs(t, err, exception.ErrBookEmptySide)

			// Cleared ids are re-usable.
			require.NoError(t, bk.AddOrder(1, Ask, 1490, 3))
			assert.Equal(t, []Level{{Price: 1490, Volume: 3}}, bk.Levels(Ask))
		})
	}
}

func TestAddDeleteRoundTrip(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			bk := impl.make()
			require.NoError(t, bk.AddOrder(1, Bid, 1500, 10))
			require.NoError(t, bk.AddOrder(2, Bid, 1495, 4))
			require.NoError(t, bk.AddOrder(3, Ask, 1510, 6))

			beforeBids := bk.Levels(Bid)
			beforeAsks := bk.Levels(Ask)
			beforeBest, err := bk.BestPrices()
			require.NoError(t, err)

			// New price level and an existing one.
			require.NoError(t, bk.AddOrder(10, Bid, 1501, 2))
			require.NoError(t, bk.AddOrder(11, Ask, 1510, 9))
			require.NoError(t, bk.DeleteOrder(10))
			require.NoError(t, bk.DeleteOrder(11))

			assert.Equal(t, beforeBids, bk.Levels(Bid))
			assert.Equal(t, beforeAsks, bk.Levels(Ask))
			best, err := bk.BestPrices()
			require.NoError(t, err)
			assert.Equal(t, beforeBest, best)
		})
	}
}

func TestLevelsBestFirst(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			bk := impl.make()
			for i, p := range []Price{1503, 1500, 1505, 1501, 1504} {
				require.NoError(t, bk.AddOrder(OrderID(i+1), Bid, p, 1))
			}
			for i, p := range []Price{1510, 1507, 1512, 1508, 1511} {
				require.NoError(t, bk.AddOrder(OrderID(i+10), Ask, p, 1))
			}

			bids := bk.Levels(Bid)
			require.Len(t, bids, 5)
			for i := 1; i < len(bids); i++ {
				assert.Greater(t, bids[i-1].Price, bids[i].Price)
			}

			asks := bk.Levels(Ask)
			require.Len(t, asks, 5)
			for i := 1; i < len(asks); i++ {
				assert.Less(t, asks[i-1].Price, asks[i].Price)
			}

			best, err := bk.BestPrices()
			require.NoError(t, err)
			assert.Equal(t, bids[0].Price, best.Bid)
			assert.Equal(t, asks[0].Price, best.Ask)
		})
	}
}

// Aggregates must always equal the sum of live order volumes per
// (side, price), and no level may survive with aggregate <= 0.
func TestAggregateMatchesLiveOrders(t *testing.T) {
	type op struct {
		kind   string
		id     OrderID
		side   Side
		price  Price
		volume Volume
	}
	ops := []op{
		{kind: "add", id: 1, side: Bid, price: 1500, volume: 10},
		{kind: "add", id: 2, side: Bid, price: 1500, volume: 7},
		{kind: "add", id: 3, side: Bid, price: 1498, volume: 3},
		{kind: "add", id: 4, side: Ask, price: 1505, volume: 8},
		{kind: "add", id: 5, side: Ask, price: 1505, volume: 2},
		{kind: "add", id: 6, side: Ask, price: 1509, volume: 5},
		{kind: "modify", id: 2, volume: 1},
		{kind: "modify", id: 4, volume: 12},
		{kind: "delete", id: 1},
		{kind: "add", id: 7, side: Bid, price: 1502, volume: 6},
		{kind: "delete", id: 5},
		{kind: "modify", id: 7, volume: 9},
	}

	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			bk := impl.make()
			live := map[OrderID]Order{}

			for _, o := range ops {
				switch o.kind {
				case "add":
					require.NoError(t, bk.AddOrder(o.id, o.side, o.price, o.volume))
					live[o.id] = Order{Side: o.side, Price: o.price, Volume: o.volume}
				case "modify":
					require.NoError(t, bk.ModifyOrder(o.id, o.volume))
					rec := live[o.id]
					rec.Volume = o.volume
					live[o.id] = rec
				case "delete":
					require.NoError(t, bk.DeleteOrder(o.id))
					delete(live, o.id)
				}

				for _, side := range []Side{Bid, Ask} {
					want := map[Price]Volume{}
					for _, rec := range live {
						if rec.Side == side {
							want[rec.Price] += rec.Volume
						}
					}
					got := map[Price]Volume{}
					for _, lv := range bk.Levels(side) {
						require.Positive(t, lv.Volume, "no level may hold aggregate <= 0")
						got[lv.Price] = lv.Volume
					}
					require.Equal(t, want, got)
				}
			}
		})
	}
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "bid", Bid.String())
	assert.Equal(t, "ask", Ask.String())
	assert.Equal(t, "unknown", Side(9).String())
}
