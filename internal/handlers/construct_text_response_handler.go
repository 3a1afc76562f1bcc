package handlers

import (
	"log/slog"

	"github.com/napuu/tweet-embed-bot/internal/config"
	"github.com/napuu/tweet-embed-bot/pkg/utils"
)

type ConstructTextResponseHandler struct {
	Hosts config.ReplacementHosts
	next  ContextHandler
}

func (r *ConstructTextResponseHandler) Execute(m *Context) {
	slog.Debug("Entering ConstructTextResponseHandler")

	if len(m.rewrittenURLs) > 0 {
		m.textResponse = utils.JoinURLs(m.rewrittenURLs)

		// Every host is always listed so the user can keep cycling through them.
		m.hostOptions = make([]HostOption, 0, len(r.Hosts))
		for _, host := range r.Hosts {
			m.hostOptions = append(m.hostOptions, HostOption{
				Host:     host,
				Selected: host == m.host,
			})
		}
	}

	r.next.Execute(m)
}

func (r *ConstructTextResponseHandler) SetNext(next ContextHandler) {
	r.next = next
}
