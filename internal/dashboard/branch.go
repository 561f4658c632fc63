// Package dashboard holds the page-level filter state: the selected branch
// and the optional date range.
package dashboard

import (
	"errors"
	"fmt"
)

// ErrUnknownBranch is returned when selecting an id outside Branches.
var ErrUnknownBranch = errors.New("unknown branch")

// Branch is a store location.
type Branch struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Branches is the fixed, ordered branch list. The first entry is the default.
var Branches = []Branch{
	{ID: "main", Name: "Main Branch", Location: "Downtown"},
	{ID: "addis", Name: "Addis Branch", Location: "Addis Ababa"},
	{ID: "bole", Name: "Bole Branch", Location: "Bole District"},
}

// DefaultBranch returns the first static branch.
func DefaultBranch() Branch { return Branches[0] }

// FindBranch returns the branch with the given id.
func FindBranch(id string) (Branch, bool) {
	for _, b := range Branches {
		if b.ID == id {
			return b, true
		}
	}
	return Branch{}, false
}

// BranchSelector holds the selected branch. The selection is always one of
// Branches.
type BranchSelector struct {
	selected Branch
	onChange func(id string)
}

// NewBranchSelector starts at the default branch. onChange is optional.
func NewBranchSelector(onChange func(id string)) *BranchSelector {
	return &BranchSelector{selected: DefaultBranch(), onChange: onChange}
}

// Selected returns the current branch.
func (s *BranchSelector) Selected() Branch { return s.selected }

// Index returns the position of the selection in Branches.
func (s *BranchSelector) Index() int {
	for i, b := range Branches {
		if b.ID == s.selected.ID {
			return i
		}
	}
	return 0
}

// Select changes the selection and notifies the callback with the id.
// Re-selecting the current branch still notifies, as a menu click would.
func (s *BranchSelector) Select(id string) error {
	b, ok := FindBranch(id)
	if !ok {
		return fmt.Errorf("select %q: %w", id, ErrUnknownBranch)
	}
	s.selected = b
	if s.onChange != nil {
		s.onChange(b.ID)
	}
	return nil
}
