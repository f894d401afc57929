package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"chest-sorter/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlChest = `size: 5
slots:
  - type: minecraft:apple
    amount: 3
    max_amount: 64
  - type: minecraft:bread
    amount: 70
    max_amount: 64
  - null
  - type: minecraft:apple
    amount: 2
    max_amount: 64
`

func TestReadFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kitchen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlChest), 0o644))

	doc, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "kitchen", doc.ID)
	assert.Equal(t, 5, doc.Size)
	assert.Len(t, doc.Slots, 5)
	assert.Nil(t, doc.Slots[2])
	assert.Equal(t, 70, doc.Slots[1].Quantity)
}

func TestFileStore_IDFromFileName(t *testing.T) {
	tests := map[string]string{
		"kitchen.yaml":               "kitchen",
		"my chest.yaml":              "my-chest",
		"/worlds/a/Nether Loot.json": "Nether-Loot",
		".hidden.yml":                "hidden",
		"???.json":                   "container",
	}
	for path, want := range tests {
		id := NewFileStore(path).ID()
		assert.Equal(t, want, id, path)
		assert.True(t, ValidID(id), path)
	}
}

func TestFileStore_SortFileWithSpaces(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "my chest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlChest), 0o644))

	doc, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "my-chest", doc.ID)

	svc := NewService(NewFileStore(path), newSettings(reconcile.ModeAlpha, true, false), nil)
	report, err := svc.Sort(ctx, doc.ID, SortOptions{})
	require.NoError(t, err)
	assert.True(t, report.Result.Success, report.Result.Reason)

	sorted, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, sorted.Slots[0].Quantity)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_SortInPlace(t *testing.T) {
	ctx := context.Background()
	for _, name := range []string{"chest.yaml", "chest.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteFile(path, document("chest", stack("minecraft:apple", 3, 64), stack("minecraft:bread", 70, 64), nil, stack("minecraft:apple", 2, 64), nil)))

			store := NewFileStore(path)
			doc, err := store.Load(ctx, store.ID())
			require.NoError(t, err)

			res := reconcile.NewEngine(nil, nil).Reconcile(ctx, NewStoredContainer(store, doc), reconcile.Config{Mode: reconcile.ModeAlpha})
			require.True(t, res.Success, res.Reason)

			sorted, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "minecraft:apple", sorted.Slots[0].BaseType)
			assert.Equal(t, 5, sorted.Slots[0].Quantity)
			assert.Equal(t, 6, sorted.Slots[2].Quantity)
		})
	}
}
