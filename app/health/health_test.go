package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLive(t *testing.T) {
	h := NewHandler(zap.NewNop())
	h.Register("database", func(ctx context.Context) error { return errors.New("down") })

	rr := httptest.NewRecorder()
	h.Live(rr, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, StatusUp, resp.Status)
	assert.Empty(t, resp.Checks)
}

func TestReady(t *testing.T) {
	testCases := []struct {
		name           string
		checkers       map[string]Checker
		expectedStatus int
		expectedBody   Status
		expectedChecks map[string]CheckResult
	}{
		{
			name:           "No checkers",
			checkers:       map[string]Checker{},
			expectedStatus: http.StatusOK,
			expectedBody:   StatusUp,
			expectedChecks: map[string]CheckResult{},
		},
		{
			name: "All up",
			checkers: map[string]Checker{
				"database": func(ctx context.Context) error { return nil },
			},
			expectedStatus: http.StatusOK,
			expectedBody:   StatusUp,
			expectedChecks: map[string]CheckResult{"database": {Status: StatusUp}},
		},
		{
			name: "One down",
			checkers: map[string]Checker{
				"database": func(ctx context.Context) error { return errors.New("connection refused") },
				"cache":    func(ctx context.Context) error { return nil },
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   StatusDown,
			expectedChecks: map[string]CheckResult{
				"database": {Status: StatusDown, Error: "connection refused"},
				"cache":    {Status: StatusUp},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(zap.NewNop())
			for name, c := range tc.checkers {
				h.Register(name, c)
			}

			rr := httptest.NewRecorder()
			h.Ready(rr, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			var resp Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tc.expectedBody, resp.Status)
			if len(tc.expectedChecks) == 0 {
				assert.Empty(t, resp.Checks)
			} else {
				assert.Equal(t, tc.expectedChecks, resp.Checks)
			}
		})
	}
}
