package utils

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

type HostProbeResult struct {
	Host       string
	StatusCode int
	Err        error
}

func (r HostProbeResult) Reachable() bool {
	return r.Err == nil && r.StatusCode > 0 && r.StatusCode < 500
}

type HostProber struct {
	client *resty.Client
	scheme string
}

func NewHostProber(timeout time.Duration) *HostProber {
	return &HostProber{
		client: resty.New().
			SetTimeout(timeout).
			SetRedirectPolicy(resty.FlexibleRedirectPolicy(3)),
		scheme: "https",
	}
}

// Probe sends a HEAD request to the root of every host. It never fails as a
// whole, unreachable hosts are only reported in the results.
func (p *HostProber) Probe(ctx context.Context, hosts []string) []HostProbeResult {
	results := make([]HostProbeResult, 0, len(hosts))
	for _, host := range hosts {
		res := HostProbeResult{Host: host}
		resp, err := p.client.R().
			SetContext(ctx).
			Head(fmt.Sprintf("%s://%s/", p.scheme, host))
		if err != nil {
			res.Err = err
		} else {
			res.StatusCode = resp.StatusCode()
		}
		results = append(results, res)
	}
	return results
}

func LogHostProbeResults(results []HostProbeResult) {
	for _, res := range results {
		if res.Reachable() {
			slog.Info("Replacement host reachable", "host", res.Host, "status", res.StatusCode)
			continue
		}
		if res.Err != nil {
			slog.Warn("Replacement host unreachable", "host", res.Host, "error", res.Err)
		} else {
			slog.Warn("Replacement host answered with an error", "host", res.Host, "status", res.StatusCode)
		}
	}
}
