package app

import (
	"maps"
	"strings"
	"sync"

	"github.com/example/rounds/internal/errs"
	"github.com/example/rounds/internal/ports/primary"
)

// CaptureServiceImpl implements the CaptureService interface as an in-memory registry.
type CaptureServiceImpl struct {
	mu     sync.Mutex
	photos map[string]string
}

// NewCaptureService creates an empty capture registry.
func NewCaptureService() *CaptureServiceImpl {
	return &CaptureServiceImpl{
		photos: make(map[string]string),
	}
}

// Attach associates an image with a section title, replacing any earlier one.
func (s *CaptureServiceImpl) Attach(section, path string) error {
	if strings.TrimSpace(section) == "" {
		return errs.Validation("capture section must not be empty")
	}
	if strings.TrimSpace(path) == "" {
		return errs.Validation("capture path for %q must not be empty", section)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.photos[section] = path
	return nil
}

// Photo returns the image attached to section.
func (s *CaptureServiceImpl) Photo(section string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	path, ok := s.photos[section]
	return path, ok
}

// All returns a copy of every attachment.
func (s *CaptureServiceImpl) All() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.photos)
}

// Ensure CaptureServiceImpl implements the interface
var _ primary.CaptureService = (*CaptureServiceImpl)(nil)
