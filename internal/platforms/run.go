package platforms

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
)

// Run starts the requested platforms and blocks until SIGINT or SIGTERM.
func Run(services ...string) error {
	hosts := EnsureBotCanStart()

	var closers []func()
	defer func() {
		for _, closeFn := range closers {
			closeFn()
		}
	}()

	for _, service := range services {
		switch service {
		case "discord":
			dg, err := RunDiscordBot(hosts)
			if err != nil {
				return err
			}
			closers = append(closers, func() {
				if err := dg.Close(); err != nil {
					slog.Warn("Error closing Discord connection", "error", err)
				}
			})
		case "telegram":
			bot, err := RunTelegramBot(hosts)
			if err != nil {
				return err
			}
			closers = append(closers, bot.Stop)
		default:
			return fmt.Errorf("unknown platform %q", service)
		}
		slog.Info("Bot is running", "platform", service)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	slog.Info("Shutting down")

	return nil
}

// ServicesFromArg maps the command line argument to platform names.
func ServicesFromArg(arg string) ([]string, error) {
	switch arg {
	case "discord", "telegram":
		return []string{arg}, nil
	case "all":
		return []string{"discord", "telegram"}, nil
	}
	return nil, fmt.Errorf("unknown platform %q", arg)
}
