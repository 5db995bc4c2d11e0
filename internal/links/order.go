package links

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrLinkNotFound    = errors.New("link not found")
)

// SortByOrder sorts links in place by order, then id.
func SortByOrder(links []Link) {
	slices.SortStableFunc(links, func(a, b Link) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// Move removes the link at from and inserts it at to, then renumbers every
// link so that Order equals its index. The input slice is not modified.
func Move(links []Link, from, to int) ([]Link, error) {
	n := len(links)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, fmt.Errorf("move %d -> %d of %d: %w", from, to, n, ErrIndexOutOfRange)
	}

	out := make([]Link, 0, n)
	moved := links[from]
	for i, l := range links {
		if i != from {
			out = append(out, l)
		}
	}
	out = append(out[:to], append([]Link{moved}, out[to:]...)...)

	Renumber(out)
	return out, nil
}

// MoveByID moves the link with activeID to the position held by overID.
// It reports false when the ids are equal and nothing changed.
func MoveByID(links []Link, activeID, overID int64) ([]Link, bool, error) {
	from := IndexOf(links, activeID)
	if from < 0 {
		return nil, false, fmt.Errorf("%w: %d", ErrLinkNotFound, activeID)
	}
	to := IndexOf(links, overID)
	if to < 0 {
		return nil, false, fmt.Errorf("%w: %d", ErrLinkNotFound, overID)
	}
	if from == to {
		return links, false, nil
	}
	out, err := Move(links, from, to)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

// IndexOf returns the position of the link with id, or -1.
func IndexOf(links []Link, id int64) int {
	for i, l := range links {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// Renumber sets Order to the positional index of every link.
func Renumber(links []Link) {
	for i := range links {
		links[i].Order = i
	}
}
