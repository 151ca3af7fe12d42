package types

import (
	"errors"
	"testing"
)

func TestMachineValid(t *testing.T) {
	m := Machine{Brand: "Cybex", Name: "Eagle NX"}
	if !m.Valid() {
		t.Error("expected valid")
	}
	if (&Machine{Brand: "Cybex"}).Valid() {
		t.Error("expected invalid without name")
	}
	if (&Machine{Name: "Eagle NX"}).Valid() {
		t.Error("expected invalid without brand")
	}
}

func TestMachineCloneIsIndependent(t *testing.T) {
	m := Machine{Brand: "Cybex", Name: "Eagle NX"}
	m.SetDetail("type", "Selectorized")

	clone := m.Clone()
	clone.SetDetail("type", "Plate-loaded")

	if m.DetailString("type") != "Selectorized" {
		t.Errorf("clone mutation leaked into original: %q", m.DetailString("type"))
	}
}

func TestErrorWrappersUnwrap(t *testing.T) {
	fetchErr := &FetchError{URL: "https://x", StatusCode: 503, Err: ErrEmptyResponse}
	if !errors.Is(fetchErr, ErrEmptyResponse) {
		t.Error("FetchError should unwrap")
	}

	extractErr := &ExtractError{Brand: "Cybex", Selector: "h3", Err: ErrNoMatch}
	if !errors.Is(extractErr, ErrNoMatch) {
		t.Error("ExtractError should unwrap")
	}

	uploadErr := &UploadError{Target: "machine_images", Key: "a.jpg", Err: ErrCaptchaBlocked}
	if !errors.Is(uploadErr, ErrCaptchaBlocked) {
		t.Error("UploadError should unwrap")
	}
}
