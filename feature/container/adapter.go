package container

import (
	"context"
	"fmt"

	"chest-sorter/core/reconcile"
	"chest-sorter/feature/container/models"
)

// StoredContainer adapts a stored document to the reconcile engine.
// Writes are staged in memory and reach the store on Commit, after which the
// staged slots are replaced by what the store actually persisted. The engine
// therefore verifies the durable state, not the staging buffer.
type StoredContainer struct {
	store Store
	doc   *models.ContainerDocument
}

// NewStoredContainer wraps doc, which must have been loaded from store.
func NewStoredContainer(store Store, doc *models.ContainerDocument) *StoredContainer {
	return &StoredContainer{store: store, doc: doc}
}

// Document returns the staged document.
func (c *StoredContainer) Document() *models.ContainerDocument {
	return c.doc
}

func (c *StoredContainer) Size() int {
	return len(c.doc.Slots)
}

func (c *StoredContainer) ReadSlot(i int) (*reconcile.ItemStack, error) {
	if i < 0 || i >= len(c.doc.Slots) {
		return nil, fmt.Errorf("slot %d out of range [0,%d)", i, len(c.doc.Slots))
	}
	return c.doc.Slots[i], nil
}

func (c *StoredContainer) ClearAll() error {
	for i := range c.doc.Slots {
		c.doc.Slots[i] = nil
	}
	return nil
}

func (c *StoredContainer) WriteSlot(i int, stack *reconcile.ItemStack) error {
	if i < 0 || i >= len(c.doc.Slots) {
		return fmt.Errorf("slot %d out of range [0,%d)", i, len(c.doc.Slots))
	}
	c.doc.Slots[i] = stack
	return nil
}

// IsUsable reports whether the document is loaded and well formed.
func (c *StoredContainer) IsUsable() bool {
	return c.doc != nil && !c.doc.Unloaded && c.doc.Size > 0 && len(c.doc.Slots) == c.doc.Size
}

// Commit saves the staged document and reloads the persisted one.
func (c *StoredContainer) Commit(ctx context.Context) error {
	if err := c.store.Save(ctx, c.doc); err != nil {
		return err
	}
	persisted, err := c.store.Load(ctx, c.doc.ID)
	if err != nil {
		return fmt.Errorf("failed to reload container %s: %w", c.doc.ID, err)
	}
	c.doc = persisted
	return nil
}
