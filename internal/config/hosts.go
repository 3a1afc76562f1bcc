package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/net/idna"
	"gopkg.in/yaml.v3"
)

// Discord allows at most 25 options in a select menu.
const MaxReplacementHosts = 25

// Telegram rejects callback data over 64 bytes. Buttons carry
// "\fhostselect|<host>", which leaves 52 bytes for the host.
const MaxHostLength = 64 - len("\fhostselect|")

var DefaultReplacementHosts = ReplacementHosts{"vxtwitter.com", "fxtwitter.com", "fixupx.com"}

// ReplacementHosts is the ordered list of hosts links can be rewritten to.
// The first one is used for new replies. It is built once at startup and
// never mutated afterwards.
type ReplacementHosts []string

func (h ReplacementHosts) Default() string {
	return h[0]
}

func (h ReplacementHosts) Contains(host string) bool {
	return slices.Contains(h, host)
}

type fileConfig struct {
	ReplacementDomains []string `yaml:"replacementDomains"`
}

// LoadReplacementHosts resolves the host list from REPLACEMENT_DOMAINS, then
// CONFIG_FILE, then the built-in defaults when the file doesn't exist.
func LoadReplacementHosts(cfg Config) (ReplacementHosts, error) {
	if strings.TrimSpace(cfg.REPLACEMENT_DOMAINS) != "" {
		return NormalizeHosts(strings.Split(cfg.REPLACEMENT_DOMAINS, ","))
	}

	data, err := os.ReadFile(cfg.CONFIG_FILE)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("Config file not found, using default replacement hosts",
			"path", cfg.CONFIG_FILE, "hosts", DefaultReplacementHosts)
		return slices.Clone(DefaultReplacementHosts), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cfg.CONFIG_FILE, err)
	}

	hosts, err := ParseReplacementHosts(data)
	if err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", cfg.CONFIG_FILE, err)
	}
	return hosts, nil
}

func ParseReplacementHosts(data []byte) (ReplacementHosts, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var fc fileConfig
	if err := decoder.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty config")
		}
		return nil, err
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("expected a single yaml document")
	}

	return NormalizeHosts(fc.ReplacementDomains)
}

// NormalizeHosts validates and lower-cases hostnames, dropping duplicates
// while keeping the original order.
func NormalizeHosts(raw []string) (ReplacementHosts, error) {
	hosts := make(ReplacementHosts, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		host, err := normalizeHost(r)
		if err != nil {
			return nil, fmt.Errorf("replacement host %q: %w", r, err)
		}
		if !slices.Contains(hosts, host) {
			hosts = append(hosts, host)
		}
	}

	if len(hosts) == 0 {
		return nil, fmt.Errorf("at least one replacement host is required")
	}
	if len(hosts) > MaxReplacementHosts {
		return nil, fmt.Errorf("too many replacement hosts (%d), must be <=%d", len(hosts), MaxReplacementHosts)
	}

	return hosts, nil
}

func normalizeHost(raw string) (string, error) {
	if strings.Contains(raw, "://") {
		return "", fmt.Errorf("must be a bare hostname, not a URL")
	}
	if strings.ContainsAny(raw, "/?#@: \t") {
		return "", fmt.Errorf("must not contain a path, port or credentials")
	}

	host := strings.TrimSuffix(raw, ".")
	asciiHost, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("idna: %w", err)
	}
	asciiHost = strings.ToLower(asciiHost)
	if !strings.Contains(asciiHost, ".") {
		return "", fmt.Errorf("must be a fully qualified domain")
	}
	if len(asciiHost) > MaxHostLength {
		return "", fmt.Errorf("must be at most %d bytes long", MaxHostLength)
	}

	return asciiHost, nil
}
