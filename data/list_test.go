package data

import (
	"math/rand"
	"slices"
	"testing"
)

// checkLinks verifies that every next link is mirrored by a prev link and
// that the forward and backward walks agree with Size.
func checkLinks[T comparable](t *testing.T, l *DoublyLinkedList[T]) {
	t.Helper()
	if l.head.prev != nil {
		t.Fatalf("head sentinel must not have a prev link")
	}
	if l.tail.next != nil {
		t.Fatalf("tail sentinel must not have a next link")
	}
	steps := 0
	for a := l.head; a != l.tail; a = a.next {
		if a.next == nil {
			t.Fatalf("forward chain ended before the tail sentinel")
		}
		if a.next.prev != a {
			t.Fatalf("broken back-reference after %d steps", steps)
		}
		steps += 1
	}

	forward := l.ToSlice()
	backward := l.ToReverseSlice()
	slices.Reverse(backward)
	if !slices.Equal(forward, backward) {
		t.Fatalf("forward %v and reversed backward %v differ", forward, backward)
	}
	if len(forward) != l.Size() || steps-1 != l.Size() {
		t.Fatalf("expected %d elements, size %d, link steps %d", len(forward), l.Size(), steps-1)
	}
}

func TestDoublyLinkedList_NewHasLinkedSentinels(t *testing.T) {
	l := NewDoublyLinkedList[int]()
	if l.head.next != l.tail || l.tail.prev != l.head {
		t.Fatalf("sentinels should point at each other")
	}
	checkLinks(t, l)
}

func TestDoublyLinkedList_EmptyRemovalsKeepSentinels(t *testing.T) {
	l := NewDoublyLinkedList[int]()
	l.RemoveFirstNode()
	l.RemoveLastNode()
	_ = l.RemoveNodeAtIndex(0)
	_ = l.RemoveNode(1)

	if l.head.next != l.tail || l.tail.prev != l.head {
		t.Fatalf("removals on an empty list corrupted the sentinels")
	}
	checkLinks(t, l)

	l.AddToEnd(1)
	l.AddToStart(0)
	checkLinks(t, l)
	if got := l.ToSlice(); !slices.Equal(got, []int{0, 1}) {
		t.Fatalf("expected [0 1], got %v", got)
	}
}

func TestDoublyLinkedList_RemoveAtSizeKeepsTail(t *testing.T) {
	l := NewDoublyLinkedList[int]()
	l.AddToEnd(1)
	l.AddToEnd(2)
	tail := l.tail

	if err := l.RemoveNodeAtIndex(2); err == nil {
		t.Fatalf("expected an error removing at size")
	}
	if l.tail != tail || l.tail.prev.value != 2 {
		t.Fatalf("tail sentinel should remain linked after the last element")
	}
	checkLinks(t, l)
}

func TestDoublyLinkedList_UnlinkClearsLinks(t *testing.T) {
	l := NewDoublyLinkedList[int]()
	l.AddToEnd(1)
	n := l.head.next
	l.RemoveFirstNode()
	if n.next != nil || n.prev != nil {
		t.Fatalf("removed node still references the list")
	}
}

// mutate applies one random valid-or-invalid operation to both the list and
// a slice model of it.
func mutate(t *testing.T, l *DoublyLinkedList[int], model []int, r *rand.Rand) []int {
	t.Helper()
	v := r.Intn(10)
	idx := r.Intn(len(model)+3) - 1
	switch r.Intn(8) {
	case 0:
		l.AddToStart(v)
		model = slices.Insert(model, 0, v)
	case 1:
		l.AddToEnd(v)
		model = append(model, v)
	case 2:
		err := l.InsertAtIndex(v, idx)
		if idx >= 0 && idx <= len(model) {
			if err != nil {
				t.Fatalf("insert at %d of %d: %v", idx, len(model), err)
			}
			model = slices.Insert(model, idx, v)
		} else if err == nil {
			t.Fatalf("insert at %d of %d should fail", idx, len(model))
		}
	case 3:
		err := l.UpdateNodeAtIndex(v, idx)
		if idx >= 0 && idx < len(model) {
			if err != nil {
				t.Fatalf("update at %d of %d: %v", idx, len(model), err)
			}
			model[idx] = v
		} else if err == nil {
			t.Fatalf("update at %d of %d should fail", idx, len(model))
		}
	case 4:
		l.RemoveFirstNode()
		if len(model) > 0 {
			model = model[1:]
		}
	case 5:
		l.RemoveLastNode()
		if len(model) > 0 {
			model = model[:len(model)-1]
		}
	case 6:
		err := l.RemoveNodeAtIndex(idx)
		if idx >= 0 && idx < len(model) {
			if err != nil {
				t.Fatalf("remove at %d of %d: %v", idx, len(model), err)
			}
			model = slices.Delete(model, idx, idx+1)
		} else if err == nil {
			t.Fatalf("remove at %d of %d should fail", idx, len(model))
		}
	case 7:
		err := l.RemoveNode(v)
		if i := slices.Index(model, v); i >= 0 {
			if err != nil {
				t.Fatalf("remove value %d: %v", v, err)
			}
			model = slices.Delete(model, i, i+1)
		} else if err == nil {
			t.Fatalf("remove of missing value %d should fail", v)
		}
	}
	return model
}

func TestDoublyLinkedList_RandomOperationsKeepInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round += 1 {
		l := NewDoublyLinkedList[int]()
		var model []int
		for i := 0; i < 200; i += 1 {
			model = mutate(t, l, model, r)
			checkLinks(t, l)
			if got := l.ToSlice(); !slices.Equal(got, model) {
				t.Fatalf("round %d step %d: expected %v, got %v", round, i, model, got)
			}
		}
	}
}

func FuzzDoublyLinkedList(f *testing.F) {
	f.Add(int64(1), uint8(20))
	f.Add(int64(7), uint8(255))
	f.Fuzz(func(t *testing.T, seed int64, steps uint8) {
		r := rand.New(rand.NewSource(seed))
		l := NewDoublyLinkedList[int]()
		var model []int
		for i := 0; i < int(steps); i += 1 {
			model = mutate(t, l, model, r)
		}
		checkLinks(t, l)
		if got := l.ToSlice(); !slices.Equal(got, model) {
			t.Fatalf("expected %v, got %v", model, got)
		}
	})
}
