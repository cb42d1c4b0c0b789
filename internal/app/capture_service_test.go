package app

import (
	"testing"

	"github.com/example/rounds/internal/errs"
)

func TestCaptureService_AttachAndPhoto(t *testing.T) {
	service := NewCaptureService()

	if err := service.Attach("Check oil", "/tmp/oil.jpg"); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	if err := service.Attach("Check oil", "/tmp/oil2.jpg"); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	path, ok := service.Photo("Check oil")
	if !ok || path != "/tmp/oil2.jpg" {
		t.Errorf("expected latest photo, got (%q, %v)", path, ok)
	}
	if _, ok := service.Photo("Check belts"); ok {
		t.Error("expected no photo for unknown section")
	}
}

func TestCaptureService_AttachValidation(t *testing.T) {
	service := NewCaptureService()

	if err := service.Attach("", "/tmp/a.jpg"); !errs.IsValidation(err) {
		t.Errorf("expected validation error for empty section, got %v", err)
	}
	if err := service.Attach("Check oil", ""); !errs.IsValidation(err) {
		t.Errorf("expected validation error for empty path, got %v", err)
	}
}

func TestCaptureService_AllReturnsCopy(t *testing.T) {
	service := NewCaptureService()
	_ = service.Attach("Check oil", "/tmp/oil.jpg")

	all := service.All()
	all["Check oil"] = "changed"

	if path, _ := service.Photo("Check oil"); path != "/tmp/oil.jpg" {
		t.Errorf("registry mutated through All(): %q", path)
	}
}
