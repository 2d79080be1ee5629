package errors

import (
	"bytes"
	"testing"
)

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		wantErr bool
	}{
		{"buildings", []byte("1\n0 10 5\n"), false},
		{"comment only", []byte("# nothing yet"), false},

		{"empty", nil, true},
		{"whitespace", []byte(" \n\t\r\n"), true},
		{"too large", bytes.Repeat([]byte("1 2\n"), MaxInputSize/4+1), true},
		{"invalid utf8", []byte{'1', ' ', 0xff, 0xfe}, true},
		{"null byte", []byte("1 2\x003"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInput(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateInput() code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateUploadFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "graph.txt", false},
		{"hidden", ".points", false},
		{"spaces", "my input.txt", false},

		{"empty", "", true},
		{"dot", ".", true},
		{"dotdot", "..", true},
		{"with path /", "path/to/file", true},
		{"with path \\", "path\\to\\file", true},
		{"control char", "foo\x01bar", true},
		{"too long", string(bytes.Repeat([]byte("a"), 300)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUploadFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUploadFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"http", "http://localhost:8080", false},
		{"https with path", "https://solver.example.com/api", false},

		{"empty", "", true},
		{"ftp", "ftp://example.com", true},
		{"no scheme", "localhost:8080", true},
		{"no host", "http://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
