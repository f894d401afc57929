package reconcile

import "context"

// Container defines the narrow interface the engine uses to read and write slots.
// Implementations wrap the host storage (in-memory chest, database rows,
// object storage documents). The engine assumes exclusive access for the
// duration of one invocation.
type Container interface {
	// Size returns the fixed number of slots.
	Size() int

	// ReadSlot returns the stack held in slot i, or nil if the slot is empty.
	ReadSlot(i int) (*ItemStack, error)

	// ClearAll empties every slot.
	ClearAll() error

	// WriteSlot stores stack in slot i.
	WriteSlot(i int, stack *ItemStack) error

	// IsUsable reports whether the underlying storage is currently accessible.
	// When false the engine aborts without writing.
	IsUsable() bool
}

// Committer is implemented by containers whose writes only become observable
// after an explicit commit point. The engine calls Commit after the write phase
// and before reading the post-state.
type Committer interface {
	Commit(ctx context.Context) error
}

// Take reads every slot of c into a snapshot.
func Take(c Container) (Snapshot, error) {
	size := c.Size()
	snap := make(Snapshot, size)
	for i := 0; i < size; i++ {
		stk, err := c.ReadSlot(i)
		if err != nil {
			return nil, err
		}
		if stk != nil && stk.Quantity > 0 {
			snap[i] = stk.Clone()
		}
	}
	return snap, nil
}

// writeAll clears c and writes every non-empty slot of layout.
// It keeps writing after a failed slot and returns the first error.
func writeAll(c Container, layout Snapshot) error {
	var firstErr error
	if err := c.ClearAll(); err != nil {
		firstErr = err
	}
	for i, stk := range layout {
		if stk == nil {
			continue
		}
		if err := c.WriteSlot(i, stk.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func commit(ctx context.Context, c Container) error {
	if committer, ok := c.(Committer); ok {
		return committer.Commit(ctx)
	}
	return nil
}
