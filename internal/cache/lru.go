package cache

// node is an entry in the recency list. It carries the key so that the
// map entry can be deleted when the node is evicted.
type node[K comparable, V any] struct {
	key   K
	value V
	// epoch is the epoch of the last Get or Set.
	epoch uint64
	prev  *node[K, V]
	next  *node[K, V]
}

// list is a doubly-linked recency list: head is the most recently used,
// tail the least. Not safe for concurrent use.
type list[K comparable, V any] struct {
	head *node[K, V]
	tail *node[K, V]
	len  int
}

func (l *list[K, V]) pushFront(n *node[K, V]) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.len++
}

func (l *list[K, V]) moveToFront(n *node[K, V]) {
	if n == l.head {
		return
	}
	l.remove(n)
	l.pushFront(n)
}

func (l *list[K, V]) remove(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	l.len--
}

func (l *list[K, V]) back() *node[K, V] {
	return l.tail
}

func (l *list[K, V]) clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}
