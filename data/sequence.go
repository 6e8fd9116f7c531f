package data

//go:generate mockgen -destination=mocks/mock_sequence.go -package=mocks . Sequence

// Sequence is the operation set shared by SinglyLinkedList and
// DoublyLinkedList. Indexes are 0-based positions of real elements.
type Sequence[T comparable] interface {
	AddToStart(value T)
	AddToEnd(value T)
	InsertAtIndex(value T, index int) error
	UpdateNodeAtIndex(value T, index int) error
	RemoveFirstNode()
	RemoveLastNode()
	RemoveNodeAtIndex(index int) error
	RemoveNode(value T) error
	Size() int
	ToSlice() []T
}

var (
	_ Sequence[int] = (*SinglyLinkedList[int])(nil)
	_ Sequence[int] = (*DoublyLinkedList[int])(nil)
)
