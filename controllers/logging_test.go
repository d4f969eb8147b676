package controllers_test

import (
	"bytes"
	"log"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The router itself carries the request-latency middleware, not just
// individually decorated routes.
func TestRouterLogsRequests(t *testing.T) {
	r := setupServer(t)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	w := doJSON(t, r, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, buf.String(), "GET /health")
}
