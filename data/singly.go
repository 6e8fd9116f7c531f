package data

import "fmt"

type singlyNode[T comparable] struct {
	value T
	next  *singlyNode[T]
}

// SinglyLinkedList is a forward-only chain of nodes reachable from head.
// The zero value is an empty list.
type SinglyLinkedList[T comparable] struct {
	head *singlyNode[T]
}

func NewSinglyLinkedList[T comparable]() *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{head: nil}
}

func (l *SinglyLinkedList[T]) AddToStart(value T) {
	l.head = &singlyNode[T]{value: value, next: l.head}
}

func (l *SinglyLinkedList[T]) AddToEnd(value T) {
	if l.head == nil {
		l.AddToStart(value)
		return
	}
	curr := l.head
	for curr.next != nil {
		curr = curr.next
	}
	curr.next = &singlyNode[T]{value: value}
}

// InsertAtIndex places value at position index, shifting later elements
// back. index may be at most Size(): the list must stay contiguous.
func (l *SinglyLinkedList[T]) InsertAtIndex(value T, index int) error {
	if index < 0 {
		return outOfBounds(index)
	}
	if index == 0 {
		l.AddToStart(value)
		return nil
	}

	prev := l.head
	for i := 0; i < index-1; i += 1 {
		if prev == nil {
			return outOfBounds(index)
		}
		prev = prev.next
	}
	if prev == nil {
		return outOfBounds(index)
	}

	prev.next = &singlyNode[T]{value: value, next: prev.next}
	return nil
}

func (l *SinglyLinkedList[T]) UpdateNodeAtIndex(value T, index int) error {
	n := l.nodeAt(index)
	if n == nil {
		return outOfBounds(index)
	}
	n.value = value
	return nil
}

func (l *SinglyLinkedList[T]) RemoveFirstNode() {
	if l.head == nil {
		return
	}
	old := l.head
	l.head = old.next
	old.next = nil
}

func (l *SinglyLinkedList[T]) RemoveLastNode() {
	if l.head == nil {
		return
	}
	if l.head.next == nil {
		l.head = nil
		return
	}
	curr := l.head
	for curr.next.next != nil {
		curr = curr.next
	}
	curr.next = nil
}

// RemoveNodeAtIndex unlinks the element at index. A negative index always
// fails; any other index on an empty list is a no-op.
func (l *SinglyLinkedList[T]) RemoveNodeAtIndex(index int) error {
	if index < 0 {
		return outOfBounds(index)
	}
	if l.head == nil {
		return nil
	}
	if index == 0 {
		l.RemoveFirstNode()
		return nil
	}

	prev := l.head
	for i := 0; i < index-1; i += 1 {
		if prev.next == nil {
			return outOfBounds(index)
		}
		prev = prev.next
	}
	if prev.next == nil {
		return outOfBounds(index)
	}

	victim := prev.next
	prev.next = victim.next
	victim.next = nil
	return nil
}

// RemoveNode unlinks the first element equal to value. Removing from an
// empty list succeeds without doing anything; a non-empty list without a
// match returns ErrNotFound.
func (l *SinglyLinkedList[T]) RemoveNode(value T) error {
	if l.head == nil {
		return nil
	}
	if l.head.value == value {
		l.RemoveFirstNode()
		return nil
	}

	prev, curr := l.head, l.head.next
	for curr != nil {
		if curr.value == value {
			prev.next = curr.next
			curr.next = nil
			return nil
		}
		prev, curr = curr, curr.next
	}
	return notFound(value)
}

func (l *SinglyLinkedList[T]) Size() int {
	count := 0
	for curr := l.head; curr != nil; curr = curr.next {
		count += 1
	}
	return count
}

func (l *SinglyLinkedList[T]) ToSlice() []T {
	result := make([]T, 0)
	for curr := l.head; curr != nil; curr = curr.next {
		result = append(result, curr.value)
	}
	return result
}

func (l *SinglyLinkedList[T]) String() string {
	return fmt.Sprint(l.ToSlice())
}

func (l *SinglyLinkedList[T]) nodeAt(index int) *singlyNode[T] {
	if index < 0 {
		return nil
	}
	curr := l.head
	for i := 0; i < index && curr != nil; i += 1 {
		curr = curr.next
	}
	return curr
}
