package primary

// CaptureService defines the primary port for photos taken during a session.
// Captures live in memory for the lifetime of the process.
type CaptureService interface {
	// Attach associates an image file with a checklist section title.
	Attach(section, path string) error

	// Photo returns the image attached to section, if any.
	Photo(section string) (string, bool)

	// All returns a copy of every attachment keyed by section title.
	All() map[string]string
}
