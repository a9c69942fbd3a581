// Unbounded multi-producer FIFO queue feeding a single consumer
package fifo

import "sync"

// Creates a new empty queue
func New[T any]() (queue *Queue[T]) {
	queue = &Queue[T]{
		items: make([]item[T], 0),
	}
	queue.cond = sync.NewCond(&queue.mutex)
	return
}

// Appends value to the back of the queue. Never blocks.
func (queue *Queue[T]) Push(value T, size int) (err error) {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	if queue.closed {
		err = ErrClosed
		return
	}

	queue.items = append(queue.items, item[T]{value: value, size: size})
	queue.bytes += size
	queue.cond.Signal() // Notify consumer that new item is available
	return
}

// Appends a final value and closes the queue in one step.
// Nothing can be pushed behind it.
func (queue *Queue[T]) PushLast(value T, size int) (err error) {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	if queue.closed {
		err = ErrClosed
		return
	}

	queue.items = append(queue.items, item[T]{value: value, size: size})
	queue.bytes += size
	queue.closed = true
	queue.cond.Broadcast()
	return
}

// Stops accepting pushes. Items already queued can still be popped.
func (queue *Queue[T]) Close() {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	queue.closed = true
	queue.cond.Broadcast()
}

// Removes the front item, waiting for one if the queue is empty.
// Returns false once the queue is closed and drained.
func (queue *Queue[T]) Pop() (value T, ok bool) {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	for len(queue.items) == 0 {
		if queue.closed {
			return
		}
		queue.cond.Wait()
	}

	front := queue.items[0]
	queue.items[0] = item[T]{} // release reference held by backing array
	queue.items = queue.items[1:]
	queue.bytes -= front.size

	value = front.value
	ok = true
	return
}

// Number of items waiting
func (queue *Queue[T]) Len() (depth int) {
	queue.mutex.Lock()
	depth = len(queue.items)
	queue.mutex.Unlock()
	return
}

// Sum of the sizes of items waiting
func (queue *Queue[T]) Bytes() (total int) {
	queue.mutex.Lock()
	total = queue.bytes
	queue.mutex.Unlock()
	return
}

// Reports whether pushes are refused
func (queue *Queue[T]) Closed() (closed bool) {
	queue.mutex.Lock()
	closed = queue.closed
	queue.mutex.Unlock()
	return
}
