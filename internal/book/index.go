package book

import "main/pkg/exception"

// orderIndex maps live order ids to their records. All four book
// implementations share it; records are stored by value and never
// alias ladder entries.
type orderIndex map[OrderID]Order

func newOrderIndex() orderIndex {
	return make(orderIndex, 1024)
}

func (x orderIndex) add(id OrderID, o Order) error {
	if _, ok := x[id]; ok {
		return exception.ErrBookDuplicateOrder
	}
	x[id] = o
	return nil
}

func (x orderIndex) get(id OrderID) (Order, error) {
	o, ok := x[id]
	if !ok {
		return Order{}, exception.ErrBookMissingOrder
	}
	return o, nil
}

func (x orderIndex) put(id OrderID, o Order) {
	x[id] = o
}

func (x orderIndex) remove(id OrderID) {
	delete(x, id)
}

func (x orderIndex) reset() {
	clear(x)
}
