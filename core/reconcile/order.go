package reconcile

import (
	"fmt"
	"sort"
	"strings"
)

// Mode selects the ordering policy applied to merged groups.
type Mode string

const (
	// ModeAlpha orders groups lexicographically by canonical key.
	ModeAlpha Mode = "alpha"
	// ModeCount orders groups by descending total quantity.
	ModeCount Mode = "count"
	// ModeType orders groups by base type, then canonical key.
	ModeType Mode = "type"
)

// Modes lists the supported sorting modes.
var Modes = []Mode{ModeAlpha, ModeCount, ModeType}

// ParseMode validates a user-supplied mode name (case-insensitive).
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeAlpha, ModeCount, ModeType:
		return m, nil
	default:
		return "", fmt.Errorf("invalid sorting mode %q, use alpha|count|type", s)
	}
}

// Order returns the keys of groups as a deterministic permutation under mode.
// Unknown modes fall back to alpha.
func Order(groups map[CanonicalKey]*MergedGroup, mode Mode) []CanonicalKey {
	keys := make([]CanonicalKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}

	var less func(a, b CanonicalKey) bool
	switch mode {
	case ModeCount:
		less = func(a, b CanonicalKey) bool {
			qa, qb := groups[a].TotalQuantity, groups[b].TotalQuantity
			if qa != qb {
				return qa > qb
			}
			return a < b
		}
	case ModeType:
		less = func(a, b CanonicalKey) bool {
			ta, tb := groups[a].Prototype.BaseType, groups[b].Prototype.BaseType
			if ta != tb {
				return ta < tb
			}
			return a < b
		}
	default:
		less = func(a, b CanonicalKey) bool { return a < b }
	}

	sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
	return keys
}
