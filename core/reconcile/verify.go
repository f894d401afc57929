package reconcile

import (
	"fmt"
	"sort"
	"strings"
)

// KeyDelta is the net quantity change of one canonical key.
// Positive means items were lost by the write, negative means items appeared.
type KeyDelta struct {
	Key   CanonicalKey `json:"key"`
	Delta int          `json:"delta"`
}

// Diagnostic describes why a post-write snapshot failed verification.
type Diagnostic struct {
	// Deltas lists every key whose before/after tally is non-zero, sorted by key.
	Deltas []KeyDelta `json:"deltas"`

	// SizeChanged is true when the snapshots differ in slot count.
	SizeChanged bool `json:"size_changed,omitempty"`
}

// String formats the diagnostic as "key net +N, key2 net -M".
func (d *Diagnostic) String() string {
	if d == nil {
		return ""
	}
	parts := make([]string, 0, len(d.Deltas)+1)
	if d.SizeChanged {
		parts = append(parts, ErrSizeChanged.Error())
	}
	for _, kd := range d.Deltas {
		sign := ""
		if kd.Delta > 0 {
			sign = "+"
		}
		parts = append(parts, fmt.Sprintf("%s net %s%d", kd.Key, sign, kd.Delta))
	}
	return strings.Join(parts, ", ")
}

// Delta returns the signed delta recorded for key, or zero.
func (d *Diagnostic) Delta(key CanonicalKey) int {
	if d == nil {
		return 0
	}
	for _, kd := range d.Deltas {
		if kd.Key == key {
			return kd.Delta
		}
	}
	return 0
}

// Verify compares two snapshots as multisets of (key, quantity). Slot order is
// irrelevant. It returns nil when every key tallies to zero.
func Verify(before, after Snapshot) *Diagnostic {
	tally := make(map[CanonicalKey]int)
	for _, stk := range before {
		if stk != nil {
			tally[Canonicalize(stk)] += stk.Quantity
		}
	}
	for _, stk := range after {
		if stk != nil {
			tally[Canonicalize(stk)] -= stk.Quantity
		}
	}

	diag := &Diagnostic{SizeChanged: len(before) != len(after)}
	for key, net := range tally {
		if net != 0 {
			diag.Deltas = append(diag.Deltas, KeyDelta{Key: key, Delta: net})
		}
	}
	if len(diag.Deltas) == 0 && !diag.SizeChanged {
		return nil
	}
	sort.Slice(diag.Deltas, func(i, j int) bool { return diag.Deltas[i].Key < diag.Deltas[j].Key })
	return diag
}

// Rollback restores before into c slot-for-slot.
func Rollback(c Container, before Snapshot) error {
	if err := writeAll(c, before); err != nil {
		return fmt.Errorf("%w: %v", ErrRollbackFailed, err)
	}
	return nil
}
