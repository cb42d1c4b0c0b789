// Package ordering computes the total order of checklist items after a drag gesture.
// Everything here is pure: callers fetch the current sequence and persist the result.
package ordering

import (
	"slices"
	"strconv"
	"strings"
)

// Gesture is a drag of Source onto Target.
type Gesture struct {
	Source int64
	Target int64
}

// ParseGesture converts raw gesture input into IDs.
//
// Stray UI events carry malformed IDs; those are reported with ok=false and callers ignore
// the gesture instead of failing. This permissive policy is intentional and applies only to
// gesture input.
func ParseGesture(source, target string) (Gesture, bool) {
	src, err := strconv.ParseInt(strings.TrimSpace(source), 10, 64)
	if err != nil {
		return Gesture{}, false
	}
	tgt, err := strconv.ParseInt(strings.TrimSpace(target), 10, 64)
	if err != nil {
		return Gesture{}, false
	}
	return Gesture{Source: src, Target: tgt}, true
}

// Move relocates source next to target in ids, preserving the relative order of the rest.
//
// ids must be the current sequence sorted by (order, id). Dragging downward (source before
// target) lands the source immediately after the target; dragging upward lands it immediately
// before. When source equals target or either is absent, ids is returned unchanged with
// moved=false. The input slice is never modified.
func Move(ids []int64, source, target int64) (result []int64, moved bool) {
	if source == target {
		return ids, false
	}
	sourceIndex := slices.Index(ids, source)
	targetIndex := slices.Index(ids, target)
	if sourceIndex < 0 || targetIndex < 0 {
		return ids, false
	}

	rest := make([]int64, 0, len(ids))
	rest = append(rest, ids[:sourceIndex]...)
	rest = append(rest, ids[sourceIndex+1:]...)

	insertAt := slices.Index(rest, target)
	if sourceIndex < targetIndex {
		insertAt++
	}

	return slices.Insert(rest, insertAt, source), true
}

// Plan adapts a gesture to the repository reorder callback shape.
func Plan(g Gesture) func(ids []int64) ([]int64, bool) {
	return func(ids []int64) ([]int64, bool) {
		return Move(ids, g.Source, g.Target)
	}
}
