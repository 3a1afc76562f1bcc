package platforms

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/napuu/tweet-embed-bot/internal/config"
	"github.com/napuu/tweet-embed-bot/pkg/utils"
)

const hostProbeTimeout = 5 * time.Second

// EnsureBotCanStart sets up logging and loads the replacement hosts. Bad
// configuration is fatal, unreachable hosts only produce warnings.
func EnsureBotCanStart() config.ReplacementHosts {
	cfg := config.FromEnv()
	slog.SetLogLoggerLevel(cfg.LogLevel())

	hosts, err := config.LoadReplacementHosts(cfg)
	if err != nil {
		panic(fmt.Sprintf("Couldn't load replacement hosts, %s", err))
	}
	slog.Info("Loaded replacement hosts", "hosts", hosts, "default", hosts.Default())

	if cfg.ProbeHosts() {
		ctx, cancel := context.WithTimeout(context.Background(), hostProbeTimeout*time.Duration(len(hosts)))
		defer cancel()
		utils.LogHostProbeResults(utils.NewHostProber(hostProbeTimeout).Probe(ctx, hosts))
	}

	return hosts
}
