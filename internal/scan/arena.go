package scan

import (
	"fmt"

	"fortio.org/safecast"
)

// arena stores values addressed by 1-based index; 0 is "none".
type arena[T any] struct {
	data []T
}

func newArena[T any](capHint uint) *arena[T] {
	return &arena[T]{data: make([]T, 0, capHint)}
}

// allocate appends value and returns its 1-based index.
func (a *arena[T]) allocate(value T) uint32 {
	a.data = append(a.data, value)
	idx, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("scan arena overflow: %w", err))
	}
	return idx
}

// get returns a pointer valid until the next allocate.
func (a *arena[T]) get(index uint32) *T {
	if index == 0 || int(index) > len(a.data) {
		return nil
	}
	return &a.data[index-1]
}

func (a *arena[T]) len() int {
	return len(a.data)
}
