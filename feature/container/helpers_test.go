package container

import (
	"context"
	"testing"

	"chest-sorter/core/reconcile"
	"chest-sorter/feature/container/models"
	"chest-sorter/feature/settings"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func stack(baseType string, qty, max int) *reconcile.ItemStack {
	return &reconcile.ItemStack{BaseType: baseType, Quantity: qty, MaxStackSize: max}
}

func document(id string, slots ...*reconcile.ItemStack) *models.ContainerDocument {
	return &models.ContainerDocument{ID: id, Size: len(slots), Slots: slots}
}

func newSettings(mode reconcile.Mode, verbose, anywhere bool) *settings.Store {
	return settings.NewStore(settings.Settings{Mode: mode, Verbose: verbose, SortWithoutSneak: anywhere})
}

func seededService(t *testing.T, docs ...*models.ContainerDocument) (*Service, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore(3)
	for _, d := range docs {
		require.NoError(t, store.Save(context.Background(), d))
	}
	return NewService(store, newSettings(reconcile.ModeAlpha, true, false), zap.NewNop()), store
}

// lossyStore drops one unit from the first occupied slot on every save,
// like a backend that truncates writes.
type lossyStore struct {
	*MemoryStore
	saves int
}

func (s *lossyStore) Save(ctx context.Context, doc *models.ContainerDocument) error {
	s.saves++
	cp := doc.Clone()
	if s.saves == 1 {
		for i, stk := range cp.Slots {
			if stk != nil {
				cp.Slots[i] = stk.WithQuantity(stk.Quantity - 1)
				break
			}
		}
	}
	return s.MemoryStore.Save(ctx, cp)
}
