package book

import "sort"

// ladder is a contiguous price ladder. The sort direction is owned by
// the book that embeds it; these helpers only maintain positions.
type ladder []Level

// searchDesc returns the first index whose price is <= target in a
// descending ladder. This is either the equal-price level or the slot
// that keeps the ladder sorted on insert.
func (l ladder) searchDesc(price Price) int {
	return sort.Search(len(l), func(i int) bool { return l[i].Price <= price })
}

// searchAsc returns the first index whose price is >= target in an
// ascending ladder.
func (l ladder) searchAsc(price Price) int {
	return sort.Search(len(l), func(i int) bool { return l[i].Price >= price })
}

// scanDesc is the linear-scan equivalent of searchDesc.
func (l ladder) scanDesc(price Price) int {
	for i := range l {
		if l[i].Price <= price {
			return i
		}
	}
	return len(l)
}

// scanAsc is the linear-scan equivalent of searchAsc.
func (l ladder) scanAsc(price Price) int {
	for i := range l {
		if l[i].Price >= price {
			return i
		}
	}
	return len(l)
}

// scanExact returns the index of the level at price, or -1.
func (l ladder) scanExact(price Price) int {
	for i := range l {
		if l[i].Price == price {
			return i
		}
	}
	return -1
}

// insertAt shifts the tail right and places lv at index i.
func (l *ladder) insertAt(i int, lv Level) {
	*l = append(*l, Level{})
	s := *l
	copy(s[i+1:], s[i:])
	s[i] = lv
}

// removeAt shifts the tail left over index i.
func (l *ladder) removeAt(i int) {
	s := *l
	copy(s[i:], s[i+1:])
	*l = s[:len(s)-1]
}

// hasAt reports whether index i holds a level at exactly price.
func (l ladder) hasAt(i int, price Price) bool {
	return i < len(l) && l[i].Price == price
}

func (l ladder) snapshot() []Level {
	if len(l) == 0 {
		return nil
	}
	out := make([]Level, len(l))
	copy(out, l)
	return out
}

// snapshotReversed copies the ladder back-to-front, so a best-at-back
// ladder reads best-first.
func (l ladder) snapshotReversed() []Level {
	if len(l) == 0 {
		return nil
	}
	out := make([]Level, len(l))
	for i := range l {
		out[len(l)-1-i] = l[i]
	}
	return out
}
