package models

import (
	"encoding/json"
	"fmt"
	"time"

	"chest-sorter/core/reconcile"
)

// DefaultSize is the slot count of a single chest.
const DefaultSize = 27

// ContainerDocument is the serialized form of a container: a fixed number of
// slots, each empty (null) or holding one stack.
type ContainerDocument struct {
	ID    string                 `json:"id" yaml:"id"`
	Size  int                    `json:"size" yaml:"size"`
	Slots []*reconcile.ItemStack `json:"slots" yaml:"slots"`
	// Unloaded marks a container whose chunk is not loaded. It cannot be sorted.
	Unloaded  bool      `json:"unloaded,omitempty" yaml:"unloaded,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Normalize pads Slots to Size and derives Size from Slots when unset.
// It fails when there are more slots than the declared size.
func (d *ContainerDocument) Normalize() error {
	if d.Size == 0 {
		d.Size = len(d.Slots)
	}
	if d.Size <= 0 {
		return fmt.Errorf("container %q has no slots", d.ID)
	}
	if len(d.Slots) > d.Size {
		return fmt.Errorf("container %q holds %d slots but declares size %d", d.ID, len(d.Slots), d.Size)
	}
	for len(d.Slots) < d.Size {
		d.Slots = append(d.Slots, nil)
	}
	for i, s := range d.Slots {
		if s != nil && s.Quantity <= 0 {
			d.Slots[i] = nil
		}
	}
	return nil
}

// Snapshot returns a deep copy of the slots.
func (d *ContainerDocument) Snapshot() reconcile.Snapshot {
	return reconcile.Snapshot(d.Slots).Clone()
}

// Clone returns a deep copy of the document.
func (d *ContainerDocument) Clone() *ContainerDocument {
	out := *d
	out.Slots = d.Snapshot()
	return &out
}

// ContainerRecord represents the 'containers' table.
type ContainerRecord struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	Size      int       `gorm:"column:size;default:27"`
	Unloaded  bool      `gorm:"column:unloaded;type:tinyint(1);default:0"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name.
func (ContainerRecord) TableName() string {
	return "containers"
}

// ContainerSlot represents one occupied slot in the 'container_slots' table.
// Empty slots have no row.
type ContainerSlot struct {
	ContainerID string `gorm:"column:container_id;primaryKey;type:varchar(64)"`
	Slot        int    `gorm:"column:slot;primaryKey;autoIncrement:false"`
	ItemType    string `gorm:"column:item_type;type:varchar(128)"`
	Data        int    `gorm:"column:data;default:0"`
	Amount      int    `gorm:"column:amount"`
	MaxAmount   int    `gorm:"column:max_amount"`
	Metadata    string `gorm:"column:metadata;type:text"` // JSON
}

// TableName overrides the table name.
func (ContainerSlot) TableName() string {
	return "container_slots"
}

// NewSlot converts a stack into its row form.
func NewSlot(containerID string, slot int, s *reconcile.ItemStack) (ContainerSlot, error) {
	meta, err := json.Marshal(s.Metadata)
	if err != nil {
		return ContainerSlot{}, fmt.Errorf("failed to encode metadata of slot %d: %w", slot, err)
	}
	return ContainerSlot{
		ContainerID: containerID,
		Slot:        slot,
		ItemType:    s.BaseType,
		Data:        s.SubVariant,
		Amount:      s.Quantity,
		MaxAmount:   s.MaxStackSize,
		Metadata:    string(meta),
	}, nil
}

// ToStack converts the row back into a stack.
func (r ContainerSlot) ToStack() (*reconcile.ItemStack, error) {
	s := &reconcile.ItemStack{
		BaseType:     r.ItemType,
		SubVariant:   r.Data,
		Quantity:     r.Amount,
		MaxStackSize: r.MaxAmount,
	}
	if r.Metadata != "" {
		if err := json.Unmarshal([]byte(r.Metadata), &s.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode metadata of slot %d: %w", r.Slot, err)
		}
	}
	return s, nil
}

// JournalEntry is a pre-sort snapshot kept so a container can be restored by hand.
type JournalEntry struct {
	ContainerID string             `json:"container_id"`
	TakenAt     time.Time          `json:"taken_at"`
	Mode        reconcile.Mode     `json:"mode"`
	Digest      string             `json:"digest"`
	Slots       reconcile.Snapshot `json:"slots"`
}
