package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbes(t *testing.T) {
	h, _ := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready", "/health"} {
		t.Run(path, func(t *testing.T) {
			resp := doRequest(t, h, http.MethodGet, path, "")

			assert.Equal(t, http.StatusOK, resp.Code)
			assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"status":"UP","checks":[]}`, resp.Body.String())
		})
	}
}

func TestProbesIgnoreStoreState(t *testing.T) {
	h, deps := newTestRouter(t)
	deps.RecordStore().Delete("1")
	deps.RecordStore().Delete("2")

	resp := doRequest(t, h, http.MethodGet, "/health/ready", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"UP","checks":[]}`, resp.Body.String())
}
