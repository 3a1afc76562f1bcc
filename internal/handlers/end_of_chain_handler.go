package handlers

import (
	"log/slog"
)

type EndOfChainHandler struct{}

func (h *EndOfChainHandler) Execute(m *Context) {
	slog.Debug("Entering EndOfChainHandler")
	if m.failure != nil {
		m.logger().Debug("Event handled with failure", "error", m.failure)
		return
	}
	m.logger().Debug("Event handled", "replied", m.textResponse != "")
}

func (h *EndOfChainHandler) SetNext(handler ContextHandler) {
	panic("cannot set next handler on ChainEnd")
}
