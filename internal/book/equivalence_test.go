package book_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"main/internal/book"
	"main/internal/feed"
)

// snapshot is the top of book observed after one mutation. ok is false
// while a side is still empty.
type snapshot struct {
	best book.BestPrices
	ok   bool
}

func replay(t *testing.T, bk book.Book, w feed.Workload) []snapshot {
	t.Helper()

	observe := func() snapshot {
		best, err := bk.BestPrices()
		return snapshot{best: best, ok: err == nil}
	}

	out := make([]snapshot, 0, len(w.Adds)+len(w.Modifies)+len(w.Deletes))
	for _, a := range w.Adds {
		require.NoError(t, bk.AddOrder(a.ID, a.Side, a.Price, a.Volume))
		out = append(out, observe())
	}
	for _, m := range w.Modifies {
		require.NoError(t, bk.ModifyOrder(m.ID, m.Volume))
		out = append(out, observe())
	}
	for _, id := range w.Deletes {
		require.NoError(t, bk.DeleteOrder(id))
		out = append(out, observe())
	}
	return out
}

// The four representations must be indistinguishable through the
// public contract: identical best-price sequences during playback and
// identical ladder contents afterwards.
func TestImplementationsEquivalent(t *testing.T) {
	w, err := feed.Generate(feed.DefaultConfig(10000, 20240915))
	require.NoError(t, err)

	reference := book.NewMapBook()
	want := replay(t, reference, w)

	others := []struct {
		name string
		bk   book.Book
	}{
		{"vector", book.NewVectorBook()},
		{"reverse-vector", book.NewReverseVectorBook()},
		{"linear", book.NewLinearBook()},
	}

	for _, other := range others {
		t.Run(other.name, func(t *testing.T) {
			got := replay(t, other.bk, w)
			require.Equal(t, len(want), len(got))
			for i := range want {
				if want[i] != got[i] {
					t.Fatalf("snapshot %d diverged: got %+v want %+v", i, got[i], want[i])
				}
			}

			require.Equal(t, reference.Levels(book.Bid), other.bk.Levels(book.Bid))
			require.Equal(t, reference.Levels(book.Ask), other.bk.Levels(book.Ask))
		})
	}
}

// Clearing and replaying must reproduce the first playback exactly.
func TestReplayAfterClearMatches(t *testing.T) {
	w, err := feed.Generate(feed.DefaultConfig(2000, 77))
	require.NoError(t, err)

	for _, impl := range []struct {
		name string
		bk   book.Book
	}{
		{"map", book.NewMapBook()},
		{"vector", book.NewVectorBook()},
		{"reverse-vector", book.NewReverseVectorBook()},
		{"linear", book.NewLinearBook()},
	} {
		t.Run(impl.name, func(t *testing.T) {
			first := replay(t, impl.bk, w)
			impl.bk.Clear()
			second := replay(t, impl.bk, w)
			require.Equal(t, first, second)
		})
	}
}
