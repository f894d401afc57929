package reconcile

// Merge aggregates quantities of all non-empty stacks by canonical key.
// The first stack seen for a key becomes the group prototype.
func Merge(stacks []*ItemStack) map[CanonicalKey]*MergedGroup {
	groups := make(map[CanonicalKey]*MergedGroup)
	for _, stk := range stacks {
		if stk == nil || stk.Quantity <= 0 {
			continue
		}
		key := Canonicalize(stk)
		g, ok := groups[key]
		if !ok {
			g = &MergedGroup{
				Key:          key,
				Prototype:    stk.WithQuantity(0),
				MaxStackSize: stk.StackLimit(),
			}
			groups[key] = g
		}
		g.TotalQuantity += stk.Quantity
	}
	return groups
}

// Redistribute packs groups into slotCount slots in the given key order, emitting
// stacks of at most each group's MaxStackSize. Remaining slots are nil.
//
// Quantities that do not fit are left out of the layout and returned as
// overflow. The verifier catches the resulting shortfall. Keys of order that
// are missing from groups are skipped, and a MaxStackSize below one packs
// single items.
func Redistribute(groups map[CanonicalKey]*MergedGroup, slotCount int, order []CanonicalKey) (Snapshot, map[CanonicalKey]int) {
	slotCount = max(slotCount, 0)
	layout := make(Snapshot, slotCount)
	var overflow map[CanonicalKey]int

	idx := 0
	for _, key := range order {
		g, ok := groups[key]
		if !ok || g == nil || g.Prototype == nil {
			continue
		}
		limit := max(g.MaxStackSize, 1)
		left := g.TotalQuantity
		for left > 0 && idx < slotCount {
			n := min(left, limit)
			layout[idx] = g.Prototype.WithQuantity(n)
			idx++
			left -= n
		}
		if left > 0 {
			if overflow == nil {
				overflow = make(map[CanonicalKey]int)
			}
			overflow[key] = left
		}
	}
	return layout, overflow
}
