package handlers

import (
	"log/slog"

	"github.com/napuu/tweet-embed-bot/internal/config"
	"github.com/napuu/tweet-embed-bot/pkg/utils"
)

type URLRewriteHandler struct {
	Hosts config.ReplacementHosts
	next  ContextHandler
}

func (u *URLRewriteHandler) Execute(m *Context) {
	slog.Debug("Entering URLRewriteHandler")
	if m.failure == nil {
		if m.host == "" {
			m.host = u.Hosts.Default()
		}

		m.rewrittenURLs = nil
		for _, found := range utils.FindStatusURLs(m.rawText) {
			m.logger().Info("Found Twitter URL", "url", found)
			rewritten := utils.RewriteStatusURL(found, m.host)
			m.logger().Info("Rewrote Twitter URL", "host", m.host, "url", rewritten)
			m.rewrittenURLs = append(m.rewrittenURLs, rewritten)
		}

		if len(m.rewrittenURLs) == 0 {
			m.logger().Info("No Twitter URLs found, ignoring")
			if m.Event == HostSelected {
				m.fail(ErrNoStatusURLs)
			}
		}
	}

	u.next.Execute(m)
}

func (u *URLRewriteHandler) SetNext(next ContextHandler) {
	u.next = next
}
