package checks

import (
	"context"
	"errors"
	"testing"

	"chest-sorter/core/reconcile"
	"chest-sorter/feature/container"
	"chest-sorter/feature/container/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenStore fails to load one container.
type brokenStore struct {
	*container.MemoryStore
	broken string
}

func (s *brokenStore) Load(ctx context.Context, id string) (*models.ContainerDocument, error) {
	if id == s.broken {
		return nil, errors.New("corrupt payload")
	}
	return s.MemoryStore.Load(ctx, id)
}

func TestCheckContents(t *testing.T) {
	ctx := context.Background()
	mem := container.NewMemoryStore(1)
	require.NoError(t, mem.Save(ctx, &models.ContainerDocument{ID: "a", Slots: []*reconcile.ItemStack{
		{BaseType: "minecraft:pearl", Quantity: 20, MaxStackSize: 16},
		nil,
		{BaseType: "minecraft:saddle", Quantity: 2},
		{BaseType: "minecraft:coal", Quantity: 64, MaxStackSize: 64},
	}}))
	require.NoError(t, mem.Save(ctx, &models.ContainerDocument{ID: "b", Unloaded: true, Slots: []*reconcile.ItemStack{nil}}))
	require.NoError(t, mem.Save(ctx, &models.ContainerDocument{ID: "c", Slots: []*reconcile.ItemStack{nil}}))

	report, err := CheckContents(ctx, &brokenStore{MemoryStore: mem, broken: "c"})
	require.NoError(t, err)
	assert.Equal(t, "memory", report.Backend)
	assert.Equal(t, 2, report.Checked)
	assert.Equal(t, 1, report.Unloaded)

	assert.Equal(t, []SlotIssue{
		{Container: "a", Slot: 0, Problem: ProblemOverstacked, Detail: "minecraft:pearl holds 20 of 16"},
		{Container: "a", Slot: 2, Problem: ProblemOverstacked, Detail: "minecraft:saddle holds 2 of 1"},
		{Container: "c", Slot: -1, Problem: ProblemUnreadable, Detail: "corrupt payload"},
	}, report.Issues)
}

func TestCheckContents_Canceled(t *testing.T) {
	mem := container.NewMemoryStore(1)
	require.NoError(t, mem.Save(context.Background(), &models.ContainerDocument{ID: "a", Slots: []*reconcile.ItemStack{nil}}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := CheckContents(ctx, mem)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckContents_InvalidSizeRow(t *testing.T) {
	db := setupSQLite(t)
	require.NoError(t, db.Create(&models.ContainerRecord{ID: "bad", Size: -1}).Error)
	require.NoError(t, db.Create(&models.ContainerRecord{ID: "chest", Size: 2}).Error)

	report, err := CheckContents(context.Background(), container.NewDBStore(db))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Checked)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "bad", report.Issues[0].Container)
	assert.Equal(t, ProblemUnreadable, report.Issues[0].Problem)
	assert.Contains(t, report.Issues[0].Detail, "invalid size -1")
}

func TestCheckOrphanSlots(t *testing.T) {
	db := setupSQLite(t)
	require.NoError(t, db.Create(&models.ContainerRecord{ID: "chest", Size: 2}).Error)
	require.NoError(t, db.Create(&[]models.ContainerSlot{
		{ContainerID: "chest", Slot: 1, ItemType: "minecraft:coal", Amount: 1, MaxAmount: 64},
		{ContainerID: "chest", Slot: 5, ItemType: "minecraft:coal", Amount: 1, MaxAmount: 64},
		{ContainerID: "ghost", Slot: 0, ItemType: "minecraft:coal", Amount: 1, MaxAmount: 64},
	}).Error)

	issues, err := CheckOrphanSlots(db)
	require.NoError(t, err)
	assert.Equal(t, []SlotIssue{
		{Container: "chest", Slot: 5, Problem: ProblemOutOfRange, Detail: "container size is 2"},
		{Container: "ghost", Slot: 0, Problem: ProblemOrphaned},
	}, issues)
}

func TestCheckOrphanSlots_NilDB(t *testing.T) {
	_, err := CheckOrphanSlots(nil)
	assert.Error(t, err)
}
