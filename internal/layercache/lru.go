package layercache

// node is an entry of the recency list. It carries the key so the oldest
// entry can be deleted from the map in O(1).
type node struct {
	key        Key
	prev, next *node
}

// recency is a doubly-linked list ordered from most recently used (head)
// to least recently used (tail). It is not safe for concurrent use.
type recency struct {
	head, tail *node
	len        int
}

func (l *recency) pushFront(key Key) *node {
	n := &node{key: key, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.len++
	return n
}

func (l *recency) moveToFront(n *node) {
	if n == l.head {
		return
	}
	l.unlink(n)
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.len++
}

// popBack removes the least recently used node.
func (l *recency) popBack() (Key, bool) {
	n := l.tail
	if n == nil {
		return Key{}, false
	}
	l.unlink(n)
	return n.key, true
}

func (l *recency) unlink(n *node) {
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
	n.prev, n.next = nil, nil
	l.len--
}
