package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	ErrNoMatch         = errors.New("selector matched nothing")
	ErrMissingAttr     = errors.New("attribute not found")
	ErrNotAnImage      = errors.New("response is not an image")
	ErrCaptchaBlocked  = errors.New("blocked by CAPTCHA")
	ErrEmptyResponse   = errors.New("empty response")
	ErrMissingCreds    = errors.New("required credentials not configured")
	ErrNoContextCache  = errors.New("no active context cache")
	ErrInvalidJobTable = errors.New("invalid job configuration")
)

// FetchError wraps errors that occur while retrieving a page.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s (status %d): %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ExtractError wraps errors that occur while extracting a single item.
type ExtractError struct {
	Brand    string
	Selector string
	Err      error
}

func (e *ExtractError) Error() string {
	if e.Selector != "" {
		return fmt.Sprintf("extract error for %s (selector=%q): %v", e.Brand, e.Selector, e.Err)
	}
	return fmt.Sprintf("extract error for %s: %v", e.Brand, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// UploadError wraps errors from the backend storage or table store.
type UploadError struct {
	Target string // bucket or table name
	Key    string // object path or row key
	Err    error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload error (%s, key=%q): %v", e.Target, e.Key, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// EnrichError wraps errors from the AI generation service.
type EnrichError struct {
	Brand string
	Name  string
	Err   error
}

func (e *EnrichError) Error() string {
	return fmt.Sprintf("enrich error for %s %q: %v", e.Brand, e.Name, e.Err)
}

func (e *EnrichError) Unwrap() error { return e.Err }
