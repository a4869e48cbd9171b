package csslex

// queue buffers tokens the parser has peeked but not yet consumed.
//
// Tokens live in a ring whose capacity is always a power of two, so offsets
// wrap with a mask. A full queue doubles its ring instead of rejecting the
// push. get and pop panic when asked for tokens that aren't buffered.
type queue struct {
	ring []Token
	head int
	n    int
}

// newQueue creates a queue able to hold at least size tokens before growing.
func newQueue(size int) *queue {
	c := 1
	for c < size {
		c <<= 1
	}
	return &queue{ring: make([]Token, c)}
}

// slot maps an offset from the head of the queue to a ring index.
//
//	ring = [c, _, a, b] head = 2
//	slot(0) = 2, slot(1) = 3, slot(2) = (2+2)&3 = 0
func (q *queue) slot(n int) int {
	return (q.head + n) & (len(q.ring) - 1)
}

// get returns the token n positions behind the head without removing it.
func (q *queue) get(n int) Token {
	if n < 0 || n >= q.n {
		panic("queue: get beyond buffered tokens")
	}
	return q.ring[q.slot(n)]
}

// push appends t to the tail of the queue.
func (q *queue) push(t Token) {
	if q.n == len(q.ring) {
		q.grow()
	}
	q.ring[q.slot(q.n)] = t
	q.n++
}

// pop removes and returns the head of the queue.
func (q *queue) pop() Token {
	if q.n == 0 {
		panic("queue: pop from an empty queue")
	}
	t := q.ring[q.head]
	q.ring[q.head] = Token{}
	q.head = q.slot(1)
	q.n--
	return t
}

// grow doubles the ring, unwrapping buffered tokens to the front.
func (q *queue) grow() {
	ring := make([]Token, 2*len(q.ring))
	for i := 0; i < q.n; i++ {
		ring[i] = q.ring[q.slot(i)]
	}
	q.ring = ring
	q.head = 0
}

func (q *queue) len() int {
	return q.n
}
