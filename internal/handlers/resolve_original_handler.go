package handlers

import (
	"fmt"
	"log/slog"
)

type ResolveOriginalHandler struct {
	next ContextHandler
}

func (r *ResolveOriginalHandler) Execute(m *Context) {
	slog.Debug("Entering ResolveOriginalHandler")
	if m.Event == HostSelected && m.failure == nil {
		if m.originalId == "" {
			m.logger().Warn("Could not find original message for interaction", "reply_id", m.id)
			m.fail(ErrOriginalNotFound)
		} else {
			switch m.Service {
			case Telegram:
				// Telegram ships the replied-to message along with the reply. The Bot
				// API can't fetch a message by id, so if the user edited their message
				// after the reply was sent, this copy may still hold the old text.
				original := m.TelegramCallback.Message.ReplyTo
				m.rawText = original.Text
				if m.rawText == "" {
					m.rawText = original.Caption
				}
			case Discord:
				original, err := m.DiscordSession.ChannelMessage(m.chatId, m.originalId)
				if err != nil {
					m.logger().Warn("Failed to fetch original message", "original_id", m.originalId, "error", err)
					m.fail(fmt.Errorf("%w: %w", ErrOriginalNotFound, err))
				} else {
					m.rawText = original.Content
				}
			}
		}
	}

	r.next.Execute(m)
}

func (r *ResolveOriginalHandler) SetNext(next ContextHandler) {
	r.next = next
}
