package fifo

import (
	"errors"
	"sync"
)

var ErrClosed = errors.New("queue is closed")

type item[T any] struct {
	value T
	size  int
}

// Unbounded FIFO Queue
type Queue[T any] struct {
	items  []item[T]  // pending items, oldest first
	bytes  int        // sum of pending item sizes
	closed bool       // no further pushes accepted
	mutex  sync.Mutex // protects all fields
	cond   *sync.Cond // signals consumer on push/close
}
