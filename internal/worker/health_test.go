package worker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", f.err)
}

func TestHealthEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		pingErr    error
		wantCode   int
		wantStatus string
	}{
		{name: "healthy", path: "/health", wantCode: http.StatusOK, wantStatus: "healthy"},
		{name: "unhealthy", path: "/health", pingErr: errors.New("down"), wantCode: http.StatusServiceUnavailable, wantStatus: "unhealthy"},
		{name: "ready", path: "/ready", wantCode: http.StatusOK, wantStatus: "ready"},
		{name: "not ready", path: "/ready", pingErr: errors.New("down"), wantCode: http.StatusServiceUnavailable, wantStatus: "not ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs := NewHealthServer(0, fakePinger{err: tt.pingErr}, zap.NewNop())
			rec := httptest.NewRecorder()
			hs.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.wantCode {
				t.Fatalf("code = %d, want %d", rec.Code, tt.wantCode)
			}
			var resp HealthResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatal(err)
			}
			if resp.Status != tt.wantStatus {
				t.Fatalf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
		})
	}
}

func TestStopWithoutStart(t *testing.T) {
	hs := NewHealthServer(0, fakePinger{}, zap.NewNop())
	if err := hs.Stop(); err != nil {
		t.Fatal(err)
	}
}
