//go:build unit

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// AssertErrorResponse accepts both error body shapes: the flat
// {"error": "..."} of the API handlers and the nested {"error": {"message":
// "..."}} of httperr.Response.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	if expectedErrorMsg == "" {
		return
	}

	var body struct {
		Error json.RawMessage `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	var flat string
	if json.Unmarshal(body.Error, &flat) == nil {
		assert.Contains(t, flat, expectedErrorMsg,
			"Response error message doesn't contain expected text")
		return
	}

	var nested struct {
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(body.Error, &nested),
		fmt.Sprintf("Unexpected error body shape: %s", w.Body.String()))
	assert.Contains(t, nested.Message, expectedErrorMsg,
		"Response error message doesn't contain expected text")
}
