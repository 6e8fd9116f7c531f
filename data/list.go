package data

import "fmt"

type node[T comparable] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// DoublyLinkedList keeps its elements between two permanent sentinels.
// head.next is the first element and tail.prev the last; an empty list
// has head.next == tail and tail.prev == head. The sentinels never leave
// the list and their values are never returned.
type DoublyLinkedList[T comparable] struct {
	head *node[T]
	tail *node[T]
}

func NewDoublyLinkedList[T comparable]() *DoublyLinkedList[T] {
	l := &DoublyLinkedList[T]{
		head: &node[T]{},
		tail: &node[T]{},
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	return l
}

func (l *DoublyLinkedList[T]) isEmpty() bool {
	return l.head.next == l.tail
}

// link splices a new node holding value right after prev.
func (l *DoublyLinkedList[T]) link(prev *node[T], value T) {
	next := prev.next
	n := &node[T]{value: value, prev: prev, next: next}
	prev.next = n
	next.prev = n
}

func (l *DoublyLinkedList[T]) unlink(n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
}

func (l *DoublyLinkedList[T]) AddToStart(value T) {
	l.link(l.head, value)
}

func (l *DoublyLinkedList[T]) AddToEnd(value T) {
	l.link(l.tail.prev, value)
}

// predecessor walks index steps from the head sentinel. It returns nil
// when the walk would reach the tail sentinel, so the result is always
// head or a real node and index <= Size() holds.
func (l *DoublyLinkedList[T]) predecessor(index int) *node[T] {
	if index < 0 {
		return nil
	}
	curr := l.head
	for i := 0; i < index; i += 1 {
		curr = curr.next
		if curr == l.tail {
			return nil
		}
	}
	return curr
}

func (l *DoublyLinkedList[T]) InsertAtIndex(value T, index int) error {
	prev := l.predecessor(index)
	if prev == nil {
		return outOfBounds(index)
	}
	l.link(prev, value)
	return nil
}

func (l *DoublyLinkedList[T]) UpdateNodeAtIndex(value T, index int) error {
	if index < 0 {
		return outOfBounds(index)
	}
	curr := l.head.next
	for i := 0; i < index && curr != l.tail; i += 1 {
		curr = curr.next
	}
	if curr == l.tail {
		return outOfBounds(index)
	}
	curr.value = value
	return nil
}

// RemoveFirstNode is a no-op on an empty list.
func (l *DoublyLinkedList[T]) RemoveFirstNode() {
	if l.isEmpty() {
		return
	}
	l.unlink(l.head.next)
}

// RemoveLastNode is a no-op on an empty list.
func (l *DoublyLinkedList[T]) RemoveLastNode() {
	if l.isEmpty() {
		return
	}
	l.unlink(l.tail.prev)
}

// RemoveNodeAtIndex requires 0 <= index < Size(). Unlike the singly
// linked list an empty list is not special-cased: every index fails.
func (l *DoublyLinkedList[T]) RemoveNodeAtIndex(index int) error {
	prev := l.predecessor(index)
	if prev == nil || prev.next == l.tail {
		return outOfBounds(index)
	}
	l.unlink(prev.next)
	return nil
}

// RemoveNode unlinks the first element equal to value, or returns
// ErrNotFound. An empty list always returns ErrNotFound.
func (l *DoublyLinkedList[T]) RemoveNode(value T) error {
	for curr := l.head.next; curr != l.tail; curr = curr.next {
		if curr.value == value {
			l.unlink(curr)
			return nil
		}
	}
	return notFound(value)
}

func (l *DoublyLinkedList[T]) Size() int {
	count := 0
	for curr := l.head.next; curr != l.tail; curr = curr.next {
		count += 1
	}
	return count
}

func (l *DoublyLinkedList[T]) ToSlice() []T {
	result := make([]T, 0)
	for curr := l.head.next; curr != l.tail; curr = curr.next {
		result = append(result, curr.value)
	}
	return result
}

// ToReverseSlice follows prev links from the tail sentinel.
func (l *DoublyLinkedList[T]) ToReverseSlice() []T {
	result := make([]T, 0)
	for curr := l.tail.prev; curr != l.head; curr = curr.prev {
		result = append(result, curr.value)
	}
	return result
}

func (l *DoublyLinkedList[T]) String() string {
	return fmt.Sprint(l.ToSlice())
}
