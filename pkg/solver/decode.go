package solver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/matzehuels/stepview/pkg/errors"
)

// Decode decodes a solver response body received with status 200.
func Decode(algo Algorithm, body []byte) (*Result, error) {
	return DecodeResponse(algo, http.StatusOK, body)
}

// DecodeResponse decodes a solver response body and its HTTP status.
//
// The body is checked for JSON first, so a non-JSON error page is reported
// as an invalid response even when the status is not 2xx.
func DecodeResponse(algo Algorithm, status int, body []byte) (*Result, error) {
	if !json.Valid(body) {
		return nil, errors.New(errors.ErrCodeInvalidResponse, "Server did not return JSON:\n%s", body)
	}

	var envelope map[string]json.RawMessage
	isObject := json.Unmarshal(body, &envelope) == nil && envelope != nil

	msg, failed := errorText(envelope["error"])
	if !ok(status) || failed {
		if !failed {
			msg = fmt.Sprintf("HTTP %d", status)
		}
		return nil, &errors.StatusError{
			Err:    errors.New(errors.ErrCodeSolver, "Server error:\n%s", msg),
			Status: status,
		}
	}
	if !isObject {
		return nil, errors.New(errors.ErrCodeInvalidResponse, "Server returned an unexpected result:\n%s", body)
	}

	res := &Result{Algorithm: algo}
	var target any
	switch algo {
	case Skyline:
		res.Skyline = &SkylineResult{}
		target = res.Skyline
	case BFS, DFS:
		res.Traversal = &TraversalResult{}
		target = res.Traversal
	case Hull:
		res.Hull = &HullResult{}
		target = res.Hull
	default:
		return nil, errors.New(errors.ErrCodeInvalidAlgorithm, "unknown algorithm %q", algo)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidResponse, err, "Server returned an unexpected %s result:\n%s", algo, body)
	}
	return res, nil
}

func ok(status int) bool { return status >= 200 && status < 300 }

// errorText reports whether raw holds a truthy error value and returns its
// text: strings as-is, anything else as its JSON encoding.
func errorText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	switch string(raw) {
	case "", "null", "false", `""`, "0":
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	return string(raw), true
}
