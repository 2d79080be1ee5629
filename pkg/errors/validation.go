package errors

import (
	"bytes"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxInputSize is the largest problem file stepview will submit.
const MaxInputSize = 1 << 20

// ValidateInput checks raw problem text before it is parsed or submitted.
//
// Validation rules:
//   - Input cannot be empty or whitespace only
//   - Maximum size of [MaxInputSize] bytes
//   - Must be valid UTF-8 without null bytes
//
// Malformed lines inside otherwise valid text are not an error; the parser
// drops them.
func ValidateInput(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return New(ErrCodeInvalidInput, "input file is empty")
	}
	if len(data) > MaxInputSize {
		return New(ErrCodeInvalidInput, "input too large (max %d bytes)", MaxInputSize)
	}
	if !utf8.Valid(data) {
		return New(ErrCodeInvalidInput, "input is not valid UTF-8 text")
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return New(ErrCodeInvalidInput, "input contains null bytes")
	}
	return nil
}

// ValidateUploadFilename validates the client-supplied name of an uploaded
// problem file. It must be a simple basename without path components.
func ValidateUploadFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "filename cannot be empty")
	}
	if len(filename) > 255 {
		return New(ErrCodeInvalidPath, "filename too long (max 255 characters)")
	}
	for _, r := range filename {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "filename contains invalid control characters")
		}
	}
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidPath, "filename cannot contain path separators")
	}
	if filename == "." || filename == ".." {
		return New(ErrCodeInvalidPath, "filename cannot be %q", filename)
	}
	return nil
}

// ValidateURL validates a solver base URL.
// It must use http or https and name a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid URL %q", rawURL)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "URL must include a host")
	}
	return nil
}
