package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testProber(t *testing.T) *HostProber {
	t.Helper()
	p := NewHostProber(2 * time.Second)
	p.scheme = "http"
	return p
}

func TestHostProber_Probe(t *testing.T) {
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD, got %s", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ok.Close()

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer broken.Close()

	hosts := []string{
		strings.TrimPrefix(ok.URL, "http://"),
		strings.TrimPrefix(broken.URL, "http://"),
	}

	results := testProber(t).Probe(context.Background(), hosts)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	if !results[0].Reachable() {
		t.Errorf("expected %s to be reachable: %+v", hosts[0], results[0])
	}
	if results[1].Reachable() {
		t.Errorf("expected %s to be unreachable: %+v", hosts[1], results[1])
	}
	if results[1].StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d, want %d", results[1].StatusCode, http.StatusBadGateway)
	}
}

func TestHostProber_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	host := strings.TrimPrefix(srv.URL, "http://")
	srv.Close()

	results := testProber(t).Probe(context.Background(), []string{host})
	if results[0].Err == nil {
		t.Fatal("expected a connection error")
	}
	if results[0].Reachable() {
		t.Error("closed server must not be reachable")
	}

	// Must not panic on mixed results.
	LogHostProbeResults(results)
}
