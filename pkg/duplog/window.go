package duplog

// Initial ring slots; the ring doubles on demand so huge scopes cost nothing up front
const windowInitialSlots = 16

// Ordered record of the most recent distinct emitted ids, front = newest.
// Holds up to capacity+1 ids so a push may briefly overshoot before truncation.
type window struct {
	ring    []uint64
	head    int // slot of the newest id
	size    int
	members map[uint64]struct{}
}

func newWindow(capacity int) (w *window) {
	slots := windowInitialSlots
	if capacity < slots {
		slots = capacity + 1
	}
	w = &window{
		ring:    make([]uint64, slots),
		members: make(map[uint64]struct{}, slots),
	}
	return
}

func (w *window) Len() (n int) {
	n = w.size
	return
}

func (w *window) Contains(id uint64) (found bool) {
	_, found = w.members[id]
	return
}

// Caller guarantees id is not already present and Len() <= capacity
func (w *window) PushFront(id uint64) {
	if w.size == len(w.ring) {
		w.grow()
	}
	w.head = (w.head - 1 + len(w.ring)) % len(w.ring)
	w.ring[w.head] = id
	w.size++
	w.members[id] = struct{}{}
}

// Doubles the ring, re-laying ids newest first from slot 0
func (w *window) grow() {
	ring := make([]uint64, 2*len(w.ring))
	for i := 0; i < w.size; i++ {
		ring[i] = w.ring[(w.head+i)%len(w.ring)]
	}
	w.ring = ring
	w.head = 0
}

// Oldest id. Only valid when Len() > 0.
func (w *window) Back() (id uint64) {
	id = w.ring[(w.head+w.size-1)%len(w.ring)]
	return
}

// Drops oldest entries until at most n remain
func (w *window) Truncate(n int) {
	for w.size > n {
		delete(w.members, w.Back())
		w.size--
	}
}

// Ids from oldest to newest
func (w *window) OldestFirst() (ids []uint64) {
	ids = make([]uint64, 0, w.size)
	for i := w.size - 1; i >= 0; i-- {
		ids = append(ids, w.ring[(w.head+i)%len(w.ring)])
	}
	return
}
