package clip

import (
	"github.com/samber/lo"
	apperrors "github.com/user/trimview/pkg/errors"
)

// Store is the ordered list of loaded clips. Insertion order is display order.
//
// Entries are copy-on-write: UpdateAt stores a new *State and a new backing
// slice, so a Snapshot taken earlier, and the pointers in it, never change.
// Store is driven from a single event loop and does no locking.
type Store struct {
	clips []*State
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append adds clips to the end, keeping their order.
func (s *Store) Append(clips ...*State) {
	if len(clips) == 0 {
		return
	}
	next := make([]*State, 0, len(s.clips)+len(clips))
	next = append(next, s.clips...)
	for _, c := range clips {
		cp := *c
		next = append(next, &cp)
	}
	s.clips = next
}

// Len returns the number of clips.
func (s *Store) Len() int {
	return len(s.clips)
}

// At returns the clip at index i.
func (s *Store) At(i int) (*State, error) {
	if i < 0 || i >= len(s.clips) {
		return nil, apperrors.ErrIndexOutOfRange.WithDetail("index %d, have %d", i, len(s.clips))
	}
	return s.clips[i], nil
}

// Snapshot returns the current entries. The slice is the caller's to keep.
func (s *Store) Snapshot() []*State {
	return lo.Map(s.clips, func(c *State, _ int) *State { return c })
}

// UpdateAt applies fn to the clip at index i and stores the result as a new
// entry. Other entries keep their pointers. An out-of-range index or an error
// from fn leaves the store untouched.
func (s *Store) UpdateAt(i int, fn func(State) (State, error)) error {
	cur, err := s.At(i)
	if err != nil {
		return err
	}
	updated, err := fn(*cur)
	if err != nil {
		return err
	}
	next := make([]*State, len(s.clips))
	copy(next, s.clips)
	next[i] = &updated
	s.clips = next
	return nil
}

// Update adapts an infallible transformation for UpdateAt.
func Update(fn func(State) State) func(State) (State, error) {
	return func(s State) (State, error) {
		return fn(s), nil
	}
}
