package reconcile

// ItemStack is a quantity of a single item variant held in one container slot.
// Stacks read from a container are treated as immutable; use Clone before mutating.
type ItemStack struct {
	// BaseType is the item identifier (e.g., "minecraft:diamond_sword").
	BaseType string `json:"type" yaml:"type"`

	// SubVariant distinguishes data-value variants of the same base type.
	SubVariant int `json:"data,omitempty" yaml:"data,omitempty"`

	// Quantity is the number of items in the stack.
	Quantity int `json:"amount" yaml:"amount"`

	// MaxStackSize is the largest quantity one slot may hold for this variant.
	MaxStackSize int `json:"max_amount" yaml:"max_amount"`

	// Metadata holds the optional structured attachments of the stack.
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Metadata is the typed set of optional attachments an item stack may carry.
// A nil pointer or empty slice means the attachment is absent.
type Metadata struct {
	Name           *string         `json:"custom_name,omitempty" yaml:"custom_name,omitempty"`
	Lore           []string        `json:"lore,omitempty" yaml:"lore,omitempty"`
	Enchantments   []Enchantment   `json:"enchantments,omitempty" yaml:"enchantments,omitempty"`
	PotionEffects  []PotionEffect  `json:"potion_effects,omitempty" yaml:"potion_effects,omitempty"`
	Book           *BookContents   `json:"written_book_contents,omitempty" yaml:"written_book_contents,omitempty"`
	BannerPatterns []BannerPattern `json:"banner_patterns,omitempty" yaml:"banner_patterns,omitempty"`
	Container      []*ItemStack    `json:"container,omitempty" yaml:"container,omitempty"`
	HeadOwner      map[string]any  `json:"player_head_owner,omitempty" yaml:"player_head_owner,omitempty"`
	MapID          map[string]any  `json:"map_id,omitempty" yaml:"map_id,omitempty"`
	Fireworks      map[string]any  `json:"fireworks,omitempty" yaml:"fireworks,omitempty"`

	// Extra carries unknown attachments through reads and writes.
	// It never contributes to the canonical key.
	Extra map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Enchantment is a single enchantment entry on an item.
type Enchantment struct {
	ID    string `json:"id" yaml:"id"`
	Level int    `json:"level" yaml:"level"`
}

// PotionEffect is a single status effect carried by a potion-family item.
type PotionEffect struct {
	Effect    string `json:"effect" yaml:"effect"`
	Amplifier int    `json:"amplifier,omitempty" yaml:"amplifier,omitempty"`
	Duration  int    `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// BookContents holds the written content of a book.
type BookContents struct {
	Title  string   `json:"title,omitempty" yaml:"title,omitempty"`
	Author string   `json:"author,omitempty" yaml:"author,omitempty"`
	Pages  []string `json:"pages,omitempty" yaml:"pages,omitempty"`
}

// BannerPattern is one layer of a banner design. Layer order is significant.
type BannerPattern struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Color   string `json:"color" yaml:"color"`
}

// Clone returns a deep copy of the stack.
func (s *ItemStack) Clone() *ItemStack {
	if s == nil {
		return nil
	}
	out := *s
	out.Metadata = s.Metadata.clone()
	return &out
}

// WithQuantity returns a deep copy of the stack holding qty items.
func (s *ItemStack) WithQuantity(qty int) *ItemStack {
	out := s.Clone()
	out.Quantity = qty
	return out
}

// StackLimit returns the effective maximum stack size, never less than one.
func (s *ItemStack) StackLimit() int {
	if s.MaxStackSize <= 0 {
		return 1
	}
	return s.MaxStackSize
}

func (m Metadata) clone() Metadata {
	out := m
	if m.Name != nil {
		name := *m.Name
		out.Name = &name
	}
	out.Lore = append([]string(nil), m.Lore...)
	out.Enchantments = append([]Enchantment(nil), m.Enchantments...)
	out.PotionEffects = append([]PotionEffect(nil), m.PotionEffects...)
	if m.Book != nil {
		book := *m.Book
		book.Pages = append([]string(nil), m.Book.Pages...)
		out.Book = &book
	}
	out.BannerPatterns = append([]BannerPattern(nil), m.BannerPatterns...)
	if m.Container != nil {
		out.Container = make([]*ItemStack, len(m.Container))
		for i, inner := range m.Container {
			out.Container[i] = inner.Clone()
		}
	}
	out.HeadOwner = cloneMap(m.HeadOwner)
	out.MapID = cloneMap(m.MapID)
	out.Fireworks = cloneMap(m.Fireworks)
	out.Extra = cloneMap(m.Extra)
	return out
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// CanonicalKey is the deterministic identity of a fungible item variant.
// Keys compare byte-wise.
type CanonicalKey string

// MergedGroup aggregates every stack sharing one canonical key.
type MergedGroup struct {
	// Key is the canonical identity of the group.
	Key CanonicalKey `json:"key"`

	// Prototype is a zero-quantity clone of the first stack seen for Key.
	Prototype *ItemStack `json:"-"`

	// TotalQuantity is the sum of quantities across all merged stacks.
	TotalQuantity int `json:"total_quantity"`

	// MaxStackSize is the per-slot limit taken from the prototype.
	MaxStackSize int `json:"max_stack_size"`
}

// Snapshot is a deep copy of a container's slots. A nil entry is an empty slot.
type Snapshot []*ItemStack

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	for i, stk := range s {
		out[i] = stk.Clone()
	}
	return out
}

// Occupied returns the number of non-empty slots.
func (s Snapshot) Occupied() int {
	n := 0
	for _, stk := range s {
		if stk != nil {
			n++
		}
	}
	return n
}

// Config is the per-invocation configuration of the engine. It is never mutated.
type Config struct {
	// Mode selects the ordering policy.
	Mode Mode `json:"mode"`
}

// Result is the outcome of a single reconciliation.
type Result struct {
	// Success is true when the container ends in the verified sorted state.
	Success bool `json:"success"`

	// Mode is the ordering policy that was applied.
	Mode Mode `json:"mode"`

	// Reason explains a soft or hard failure. Empty on success.
	Reason string `json:"reason,omitempty"`

	// Diagnostic holds the per-key signed deltas when verification failed.
	Diagnostic *Diagnostic `json:"diagnostic,omitempty"`

	// Groups is the number of distinct canonical keys found.
	Groups int `json:"groups"`

	// Overflow lists quantities that did not fit into the container.
	Overflow map[CanonicalKey]int `json:"overflow,omitempty"`

	// RolledBack is true when the original layout was restored.
	RolledBack bool `json:"rolled_back"`

	// BeforeDigest and AfterDigest fingerprint the slot layouts.
	BeforeDigest string `json:"before_digest,omitempty"`
	AfterDigest  string `json:"after_digest,omitempty"`

	// Err is the underlying error, if any.
	Err error `json:"-"`
}
