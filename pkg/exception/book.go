package exception

import "github.com/yanun0323/errors"

var (
	ErrBookDuplicateOrder = errors.New("book: duplicate order")
	ErrBookMissingOrder   = errors.New("book: missing order")
	ErrBookMissingLevel   = errors.New("book: missing price level")
	ErrBookEmptySide      = errors.New("book: empty side")
)
