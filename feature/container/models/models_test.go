package models

import (
	"testing"

	"chest-sorter/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerDocument_Normalize(t *testing.T) {
	t.Run("Pads", func(t *testing.T) {
		d := &ContainerDocument{ID: "a", Size: 4, Slots: []*reconcile.ItemStack{{BaseType: "minecraft:stone", Quantity: 1}}}
		require.NoError(t, d.Normalize())
		assert.Len(t, d.Slots, 4)
	})

	t.Run("DerivesSize", func(t *testing.T) {
		d := &ContainerDocument{ID: "b", Slots: make([]*reconcile.ItemStack, 3)}
		require.NoError(t, d.Normalize())
		assert.Equal(t, 3, d.Size)
	})

	t.Run("DropsEmptyStacks", func(t *testing.T) {
		d := &ContainerDocument{ID: "c", Slots: []*reconcile.ItemStack{{BaseType: "minecraft:stone", Quantity: 0}}}
		require.NoError(t, d.Normalize())
		assert.Nil(t, d.Slots[0])
	})

	t.Run("TooManySlots", func(t *testing.T) {
		d := &ContainerDocument{ID: "d", Size: 1, Slots: make([]*reconcile.ItemStack, 2)}
		assert.Error(t, d.Normalize())
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Error(t, (&ContainerDocument{ID: "e"}).Normalize())
	})
}

func TestContainerSlot_RoundTrip(t *testing.T) {
	name := "Excalibur"
	in := &reconcile.ItemStack{
		BaseType:     "minecraft:diamond_sword",
		Quantity:     1,
		MaxStackSize: 1,
		Metadata: reconcile.Metadata{
			Name:         &name,
			Enchantments: []reconcile.Enchantment{{ID: "sharpness", Level: 5}},
		},
	}

	row, err := NewSlot("chest-1", 4, in)
	require.NoError(t, err)
	assert.Equal(t, "chest-1", row.ContainerID)
	assert.Equal(t, 4, row.Slot)

	out, err := row.ToStack()
	require.NoError(t, err)
	assert.Equal(t, reconcile.Canonicalize(in), reconcile.Canonicalize(out))
	assert.Equal(t, in.Quantity, out.Quantity)

	row.Metadata = "{broken"
	_, err = row.ToStack()
	assert.Error(t, err)
}
