package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupsOf(stacks ...*ItemStack) map[CanonicalKey]*MergedGroup {
	return Merge(stacks)
}

func TestOrder_Count(t *testing.T) {
	a, b, c := stack("a", 5, 64), stack("b", 20, 64), stack("c", 1, 64)
	keys := Order(groupsOf(a, b, c), ModeCount)
	assert.Equal(t, []CanonicalKey{Canonicalize(b), Canonicalize(a), Canonicalize(c)}, keys)
}

func TestOrder_CountTieBreak(t *testing.T) {
	keys := Order(groupsOf(stack("z", 4, 64), stack("y", 4, 64), stack("x", 9, 64)), ModeCount)
	assert.Equal(t, []CanonicalKey{"x:0", "y:0", "z:0"}, keys)
}

func TestOrder_Alpha(t *testing.T) {
	keys := Order(groupsOf(stack(coal, 1, 64), stack(apple, 1, 64), stack(bread, 1, 64)), ModeAlpha)
	for i := 1; i < len(keys); i++ {
		assert.LessOrEqual(t, keys[i-1], keys[i])
	}
}

func TestOrder_Type(t *testing.T) {
	named := stack(apple, 1, 64)
	named.Metadata.Name = strPtr("Golden")
	wool := stack("minecraft:wool", 1, 64)
	wool.SubVariant = 3

	groups := groupsOf(wool, stack("minecraft:wool", 1, 64), named, stack(apple, 1, 64))
	keys := Order(groups, ModeType)
	require.Len(t, keys, 4)

	for i := 1; i < len(keys); i++ {
		prev, cur := groups[keys[i-1]].Prototype.BaseType, groups[keys[i]].Prototype.BaseType
		assert.LessOrEqual(t, prev, cur)
		if prev == cur {
			assert.Less(t, keys[i-1], keys[i])
		}
	}
	assert.Equal(t, CanonicalKey("minecraft:apple:0"), keys[0])
}

func TestOrder_UnknownModeFallsBackToAlpha(t *testing.T) {
	groups := groupsOf(stack("b", 1, 64), stack("a", 9, 64))
	assert.Equal(t, Order(groups, ModeAlpha), Order(groups, Mode("bogus")))
}

func TestOrder_IsPermutation(t *testing.T) {
	groups := groupsOf(stack("a", 1, 64), stack("b", 2, 64), stack("c", 3, 64), stack("d", 3, 64))
	for _, mode := range Modes {
		keys := Order(groups, mode)
		assert.Len(t, keys, len(groups))
		seen := map[CanonicalKey]bool{}
		for _, k := range keys {
			assert.False(t, seen[k], "duplicate key %s", k)
			seen[k] = true
			assert.Contains(t, groups, k)
		}
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Count ")
	assert.NoError(t, err)
	assert.Equal(t, ModeCount, m)

	_, err = ParseMode("random")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "alpha|count|type")
}
