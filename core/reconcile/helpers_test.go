package reconcile

import (
	"context"
	"errors"
)

const (
	apple = "minecraft:apple"
	bread = "minecraft:bread"
	coal  = "minecraft:coal"
	pearl = "minecraft:ender_pearl"
)

func stack(baseType string, qty, max int) *ItemStack {
	return &ItemStack{BaseType: baseType, Quantity: qty, MaxStackSize: max}
}

// sliceContainer is an in-memory container with fault injection.
type sliceContainer struct {
	slots []*ItemStack

	unusable bool
	// dropOnWrite removes that many units from the first written stack, once.
	dropOnWrite int
	// failWrites rejects the first n WriteSlot calls.
	failWrites int
	// commitErr is returned by the first Commit call.
	commitErr error

	writes  int
	commits int
}

func newSliceContainer(slots ...*ItemStack) *sliceContainer {
	return &sliceContainer{slots: slots}
}

func (c *sliceContainer) Size() int { return len(c.slots) }

func (c *sliceContainer) ReadSlot(i int) (*ItemStack, error) {
	return c.slots[i].Clone(), nil
}

func (c *sliceContainer) ClearAll() error {
	for i := range c.slots {
		c.slots[i] = nil
	}
	return nil
}

func (c *sliceContainer) WriteSlot(i int, s *ItemStack) error {
	c.writes++
	if c.failWrites > 0 {
		c.failWrites--
		return errors.New("write rejected")
	}
	if c.dropOnWrite > 0 {
		s = s.Clone()
		s.Quantity -= c.dropOnWrite
		c.dropOnWrite = 0
		if s.Quantity <= 0 {
			return nil
		}
	}
	c.slots[i] = s
	return nil
}

func (c *sliceContainer) IsUsable() bool { return !c.unusable }

func (c *sliceContainer) Commit(ctx context.Context) error {
	c.commits++
	if c.commitErr != nil {
		err := c.commitErr
		c.commitErr = nil
		return err
	}
	return nil
}

func (c *sliceContainer) snapshot() Snapshot {
	return Snapshot(c.slots).Clone()
}
