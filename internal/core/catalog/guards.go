// Package catalog contains the pure business rules for catalog data (options and checklist items).
// Guards are pure functions that evaluate preconditions without side effects.
package catalog

import (
	"fmt"
	"strings"

	"github.com/example/rounds/internal/errs"
)

// Category is the closed set of option kinds.
type Category string

const (
	CategoryLeader  Category = "leader"
	CategoryMachine Category = "machine"
	CategoryShift   Category = "shift"
	CategoryRoute   Category = "route"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryLeader, CategoryMachine, CategoryShift, CategoryRoute}
}

// aliases accepts the field names used by the session drafts as well.
var aliases = map[string]Category{
	"leader":  CategoryLeader,
	"lider":   CategoryLeader,
	"machine": CategoryMachine,
	"maquina": CategoryMachine,
	"shift":   CategoryShift,
	"turma":   CategoryShift,
	"route":   CategoryRoute,
	"rota":    CategoryRoute,
}

// ParseCategory resolves user input to a Category.
// Anything outside the closed set is an errs.ErrValidation.
func ParseCategory(s string) (Category, error) {
	if c, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return "", errs.Validation("unknown category %q (expected leader, machine, shift or route)", s)
}

// DraftKey returns the draft key that stores the session's selection for this category.
func (c Category) DraftKey() string {
	switch c {
	case CategoryLeader:
		return "lider"
	case CategoryMachine:
		return "maquina"
	case CategoryShift:
		return "turma"
	case CategoryRoute:
		return "rota"
	}
	return ""
}

// Label returns a human-readable name.
func (c Category) Label() string {
	switch c {
	case CategoryLeader:
		return "Leader"
	case CategoryMachine:
		return "Machine"
	case CategoryShift:
		return "Shift"
	case CategoryRoute:
		return "Route"
	}
	return string(c)
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed  bool
	Reason   string
	NotFound bool // the target row is missing, as opposed to malformed input
}

// Error converts the guard result to a classified error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	if r.NotFound {
		return errs.NotFound("%s", r.Reason)
	}
	return errs.Validation("%s", r.Reason)
}

// NameContext provides context for guards on a new or replaced name/title.
type NameContext struct {
	Entity string // "option" or "checklist item"
	Name   string
}

// RenameContext provides context for rename guards.
type RenameContext struct {
	Entity  string
	ID      int64
	Exists  bool
	NewName string
}

// CanUseName evaluates whether a name is acceptable.
// Rules:
// - Name must contain a non-space character
//
// Duplicate names are accepted: two leaders may share a first name.
func CanUseName(ctx NameContext) GuardResult {
	if strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s name must not be empty", ctx.Entity),
		}
	}
	return GuardResult{Allowed: true}
}

// CanRename evaluates whether an existing row can be renamed.
// Rules:
// - Row must exist
// - New name must be acceptable (see CanUseName)
func CanRename(ctx RenameContext) GuardResult {
	if !ctx.Exists {
		return GuardResult{
			Allowed:  false,
			NotFound: true,
			Reason:   fmt.Sprintf("%s %d not found", ctx.Entity, ctx.ID),
		}
	}
	return CanUseName(NameContext{Entity: ctx.Entity, Name: ctx.NewName})
}

// NormalizeName trims surrounding whitespace from user-supplied names.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
