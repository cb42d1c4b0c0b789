// Package snapshot assembles the immutable view of a route session handed to report renderers.
package snapshot

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the session date format (dd/mm/yyyy).
const DateLayout = "02/01/2006"

// Draft keys written by the session form.
const (
	KeyDate    = "data"
	KeyLeader  = "lider"
	KeyMachine = "maquina"
	KeyShift   = "turma"
	KeyRoute   = "rota"

	observationPrefix = "obs_"
)

// NoObservation is how a never-recorded observation is presented.
const NoObservation = "no observation"

// ObservationKey returns the draft key holding the observation for a checklist item.
func ObservationKey(title string) string {
	return observationPrefix + title
}

// Identification holds the four selections that identify a route run.
type Identification struct {
	Leader  string
	Machine string
	Shift   string
	Route   string
}

// Observation is a checklist item's note. Recorded=false means the item was never visited,
// which is distinct from a recorded empty note.
type Observation struct {
	Text     string
	Recorded bool
}

// String returns the text, or NoObservation when nothing was recorded.
func (o Observation) String() string {
	if !o.Recorded {
		return NoObservation
	}
	return o.Text
}

// Item is one checklist entry in session order.
type Item struct {
	Title       string
	Observation Observation
	PhotoPath   string // optional capture attached during the session
}

// Snapshot is a point-in-time composition of a route session.
type Snapshot struct {
	Date           string
	Identification Identification
	Items          []Item
}

// Build assembles a snapshot. An empty date falls back to now formatted with DateLayout.
// items is copied so later changes by the caller cannot leak into the snapshot.
func Build(date string, ident Identification, items []Item, now time.Time) *Snapshot {
	if strings.TrimSpace(date) == "" {
		date = now.Format(DateLayout)
	}
	copied := make([]Item, len(items))
	copy(copied, items)
	return &Snapshot{
		Date:           date,
		Identification: ident,
		Items:          copied,
	}
}

// FileName returns the artifact file name: <date with "/" as "_">_<shift>_<leader>.<ext>.
// Path separators inside the parts are replaced so the name never escapes its directory.
func FileName(s *Snapshot, ext string) string {
	return NumberedFileName(s, ext, 1)
}

// NumberedFileName returns FileName with "_<n>" appended to the stem when n > 1.
// It names the n-th report of the same date, shift and leader.
func NumberedFileName(s *Snapshot, ext string, n int) string {
	parts := []string{
		strings.ReplaceAll(s.Date, "/", "_"),
		s.Identification.Shift,
		s.Identification.Leader,
	}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.NewReplacer("/", "-", "\\", "-", "..", "-").Replace(p)
		if p == "" {
			p = "none"
		}
		parts[i] = p
	}
	if n > 1 {
		parts = append(parts, strconv.Itoa(n))
	}
	return fmt.Sprintf("%s.%s", strings.Join(parts, "_"), strings.TrimPrefix(ext, "."))
}

// ValidDate reports whether s parses with DateLayout.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
