package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	requestIDLength = 12
	// longest caller supplied request id that is echoed back
	maxRequestIDLength = 64
)

// GenerateRequestID returns a short random id used to correlate log lines of
// one request.
func GenerateRequestID() (string, error) {
	id, err := gonanoid.New(requestIDLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate a request id: %w", err)
	}
	return id, nil
}

// RequestID returns candidate when it is a safe id to echo into headers and
// logs, and a freshly generated id otherwise.
func RequestID(candidate string) (string, error) {
	if isSafeRequestID(candidate) {
		return candidate, nil
	}
	return GenerateRequestID()
}

// isSafeRequestID accepts 1 to maxRequestIDLength characters from the nanoid
// alphabet plus '.', so uuids and trace ids pass unchanged.
func isSafeRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == '.':
		default:
			return false
		}
	}
	return true
}
