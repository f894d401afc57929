package checks

import (
	"context"
	"fmt"

	"chest-sorter/core/utils"
	"chest-sorter/feature/container"

	"gorm.io/gorm"
)

// Problems reported for a slot.
const (
	ProblemOverstacked = "overstacked"
	ProblemUnreadable  = "unreadable"
	ProblemOrphaned    = "orphaned"
	ProblemOutOfRange  = "out_of_range"
)

// SlotIssue describes a single problem found in stored contents.
// Slot is -1 when the problem concerns the whole container.
type SlotIssue struct {
	Container string `json:"container"`
	Slot      int    `json:"slot"`
	Problem   string `json:"problem"`
	Detail    string `json:"detail,omitempty"`
}

// ContentsReport is the result of a contents check.
type ContentsReport struct {
	Backend  string      `json:"backend"`
	Checked  int         `json:"checked"`
	Unloaded int         `json:"unloaded"`
	Issues   []SlotIssue `json:"issues"`
}

// CheckContents loads every stored container and reports slots holding more
// than their stack limit allows, and containers that cannot be read.
func CheckContents(ctx context.Context, store container.Store) (*ContentsReport, error) {
	ids, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	report := &ContentsReport{Backend: store.Name(), Issues: []SlotIssue{}}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := store.Load(ctx, id)
		if err != nil {
			report.Issues = append(report.Issues, SlotIssue{Container: id, Slot: -1, Problem: ProblemUnreadable, Detail: err.Error()})
			continue
		}
		report.Checked++
		if doc.Unloaded {
			report.Unloaded++
		}

		for i, s := range doc.Slots {
			if s == nil {
				continue
			}
			limit := max(s.MaxStackSize, 1)
			if s.Quantity > limit {
				report.Issues = append(report.Issues, SlotIssue{
					Container: id,
					Slot:      i,
					Problem:   ProblemOverstacked,
					Detail:    fmt.Sprintf("%s holds %d of %d", s.BaseType, s.Quantity, limit),
				})
			}
		}
	}
	return report, nil
}

const orphanQuery = `SELECT s.container_id, s.slot, c.size
FROM container_slots s
LEFT JOIN containers c ON c.id = s.container_id
WHERE c.id IS NULL OR s.slot < 0 OR s.slot >= c.size
ORDER BY s.container_id, s.slot`

// CheckOrphanSlots finds slot rows without a container or outside its size.
// Such rows make the container unreadable through the database backend.
func CheckOrphanSlots(db *gorm.DB) ([]SlotIssue, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	var rows []map[string]any
	if err := db.Raw(orphanQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to scan container slots: %w", err)
	}

	issues := make([]SlotIssue, 0, len(rows))
	for _, row := range rows {
		issue := SlotIssue{
			Container: utils.ToString(row["container_id"]),
			Slot:      utils.ToInt(row["slot"]),
			Problem:   ProblemOrphaned,
		}
		if row["size"] != nil {
			issue.Problem = ProblemOutOfRange
			issue.Detail = fmt.Sprintf("container size is %d", utils.ToInt(row["size"]))
		}
		issues = append(issues, issue)
	}
	return issues, nil
}
