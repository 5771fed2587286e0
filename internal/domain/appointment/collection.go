package appointment

import (
	"iter"
	"slices"
)

// OverlapPolicy decides whether a Collection accepts overlapping members.
type OverlapPolicy int

const (
	// Permit allows overlapping members. Used for cross-contact aggregates.
	Permit OverlapPolicy = iota
	// Reject refuses any mutation that would introduce an overlapping pair.
	Reject
)

func (p OverlapPolicy) String() string {
	if p == Reject {
		return "reject"
	}
	return "permit"
}

// Collection is an ordered set of unique appointments owned by one contact.
// Every mutation either succeeds leaving the policy invariant intact, or
// fails leaving the collection untouched.
//
// A Collection is not safe for concurrent mutation.
type Collection struct {
	policy OverlapPolicy
	items  []Appointment
}

func NewCollection(policy OverlapPolicy) *Collection {
	return &Collection{policy: policy}
}

// NewDisjoint builds a Reject collection from slots.
func NewDisjoint(slots ...Appointment) (*Collection, error) {
	c := NewCollection(Reject)
	if err := c.ReplaceAll(slots); err != nil {
		return nil, err
	}
	return c, nil
}

// NewPermissive builds a Permit collection from slots.
func NewPermissive(slots ...Appointment) (*Collection, error) {
	c := NewCollection(Permit)
	if err := c.ReplaceAll(slots); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Collection) Policy() OverlapPolicy { return c.policy }

func (c *Collection) Len() int { return len(c.items) }

func (c *Collection) IsEmpty() bool { return len(c.items) == 0 }

func (c *Collection) Contains(a Appointment) bool {
	return slices.Contains(c.items, a)
}

// Overlaps reports whether a overlaps any current member.
func (c *Collection) Overlaps(a Appointment) bool {
	return slices.ContainsFunc(c.items, a.Overlaps)
}

// IsOverlapping reports whether two members overlap. Always false under Reject.
func (c *Collection) IsOverlapping() bool {
	if c.policy == Reject {
		return false
	}
	return HasOverlapping(c.items)
}

func (c *Collection) Add(a Appointment) error {
	if a.IsZero() {
		return ErrInvalidFormat
	}
	if c.Contains(a) {
		return ErrDuplicate
	}
	if c.policy == Reject && c.Overlaps(a) {
		return ErrOverlapConflict
	}
	c.items = append(c.items, a)
	return nil
}

// SetOne replaces target with replacement at the same position.
func (c *Collection) SetOne(target, replacement Appointment) error {
	if replacement.IsZero() {
		return ErrInvalidFormat
	}
	idx := slices.Index(c.items, target)
	if idx < 0 {
		return ErrNotFound
	}
	if target == replacement {
		return nil
	}

	for i, other := range c.items {
		if i == idx {
			continue
		}
		if other == replacement {
			return ErrDuplicate
		}
		if c.policy == Reject && other.Overlaps(replacement) {
			return ErrOverlapConflict
		}
	}

	c.items[idx] = replacement
	return nil
}

func (c *Collection) Remove(target Appointment) error {
	idx := slices.Index(c.items, target)
	if idx < 0 {
		return ErrNotFound
	}
	c.items = slices.Delete(c.items, idx, idx+1)
	return nil
}

// ReplaceAll swaps in slots as the whole membership.
func (c *Collection) ReplaceAll(slots []Appointment) error {
	if err := c.validateBatch(slots); err != nil {
		return err
	}
	c.items = slices.Clone(slots)
	return nil
}

// AddAll appends slots, all or nothing.
func (c *Collection) AddAll(slots []Appointment) error {
	if err := c.validateBatch(slots); err != nil {
		return err
	}
	for _, a := range slots {
		if c.Contains(a) {
			return ErrDuplicate
		}
		if c.policy == Reject && c.Overlaps(a) {
			return ErrOverlapConflict
		}
	}
	c.items = append(c.items, slots...)
	return nil
}

// validateBatch checks slots against each other, not against the members.
func (c *Collection) validateBatch(slots []Appointment) error {
	seen := make(map[Appointment]struct{}, len(slots))
	for _, a := range slots {
		if a.IsZero() {
			return ErrInvalidFormat
		}
		if _, dup := seen[a]; dup {
			return ErrDuplicate
		}
		seen[a] = struct{}{}
	}
	if c.policy == Reject && HasOverlapping(slots) {
		return ErrOverlapConflict
	}
	return nil
}

// All yields members in insertion order. The sequence reads the collection
// at iteration time and can be ranged over repeatedly.
func (c *Collection) All() iter.Seq[Appointment] {
	return func(yield func(Appointment) bool) {
		for _, a := range c.items {
			if !yield(a) {
				return
			}
		}
	}
}

// Slice returns a copy of the members in insertion order.
func (c *Collection) Slice() []Appointment {
	return slices.Clone(c.items)
}

// Sorted returns a copy of the members in day/start order.
func (c *Collection) Sorted() []Appointment {
	out := slices.Clone(c.items)
	slices.SortFunc(out, Compare)
	return out
}

func (c *Collection) Clone() *Collection {
	return &Collection{policy: c.policy, items: slices.Clone(c.items)}
}

// Equal compares membership and order, ignoring policy.
func (c *Collection) Equal(other *Collection) bool {
	return slices.Equal(c.items, other.items)
}

func (c *Collection) String() string {
	out := "["
	for i, a := range c.items {
		if i > 0 {
			out += ", "
		}
		out += a.String()
	}
	return out + "]"
}
