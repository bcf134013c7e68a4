// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package merchant

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/toeirei/dropindemo/internal/logging"
)

func TestServer_LogsRequests(t *testing.T) {
	var buf bytes.Buffer
	logging.Setup(&buf, "info")
	defer logging.Setup(os.Stderr, "info")

	srv := NewServer(ServerConfig{Environment: "sandbox"}, newTestStore(t))
	router := srv.Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/customers", nil))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/live", nil))
	require.Equal(t, http.StatusOK, w.Code)

	out := buf.String()
	require.Contains(t, out, "path=/customers")
	require.Contains(t, out, "status=201")
	require.Contains(t, out, "path=/-/live")
	require.Contains(t, out, "status=200")
	require.Contains(t, out, "request_id=")
}
