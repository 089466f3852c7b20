// internal/bitplane/planes.go
package bitplane

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Plane indexing is MSB first: plane 0 holds bit 7 of the byte.
const (
	PlaneCount = 8
	MSBPlane   = 0
	LSBPlane   = PlaneCount - 1
)

var ErrPlaneRange = errors.New("bitplane: plane index out of range")

// PlaneRangeError reports a plane index outside [MSBPlane, LSBPlane].
type PlaneRangeError struct {
	Index int
}

func (e *PlaneRangeError) Error() string {
	return fmt.Sprintf("bitplane: plane index %d out of range [%d,%d]", e.Index, MSBPlane, LSBPlane)
}

func (e *PlaneRangeError) Unwrap() error { return ErrPlaneRange }

// PlaneWeight is the value plane p contributes to a byte (128 for plane 0, 1 for plane 7).
func PlaneWeight(p int) uint8 { return 1 << uint(LSBPlane-p) }

func checkPlane(p int) error {
	if p < MSBPlane || p > LSBPlane {
		return &PlaneRangeError{Index: p}
	}
	return nil
}

// PlaneSet is a sorted, duplicate-free list of plane indices.
// The zero value is the empty set.
type PlaneSet []int

// NewPlaneSet validates and de-duplicates indices.
func NewPlaneSet(indices ...int) (PlaneSet, error) {
	if len(indices) == 0 {
		return nil, nil
	}
	var seen [PlaneCount]bool
	out := make(PlaneSet, 0, len(indices))
	for _, p := range indices {
		if err := checkPlane(p); err != nil {
			return nil, err
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.Ints(out)
	return out, nil
}

// ParsePlanes parses CLI tokens. A token may itself be a comma-separated list.
func ParsePlanes(tokens []string) (PlaneSet, error) {
	var idx []int
	for _, tok := range tokens {
		for _, f := range strings.Split(tok, ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("bitplane: invalid plane %q: %w", f, err)
			}
			idx = append(idx, n)
		}
	}
	return NewPlaneSet(idx...)
}

// Mask returns the bits of a byte that survive zeroing s.
func (s PlaneSet) Mask() uint8 {
	m := uint8(0xFF)
	for _, p := range s {
		if checkPlane(p) == nil {
			m &^= PlaneWeight(p)
		}
	}
	return m
}

func (s PlaneSet) String() string {
	parts := make([]string, len(s))
	for i, p := range s {
		parts[i] = strconv.Itoa(p)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
