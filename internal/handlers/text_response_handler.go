package handlers

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

type TextResponseHandler struct {
	next ContextHandler
}

func (r *TextResponseHandler) Execute(m *Context) {
	slog.Debug("Entering TextResponseHandler")
	if m.Event == MessageCreated && m.textResponse != "" {
		var err error

		switch m.Service {
		case Telegram:
			_, err = m.Telebot.Reply(m.TelegramMessage, m.textResponse, telegramHostMarkup(m.hostOptions))
		case Discord:
			_, err = m.DiscordSession.ChannelMessageSendComplex(m.chatId, &discordgo.MessageSend{
				Content:    m.textResponse,
				Components: discordHostSelect(m.hostOptions),
				Reference: &discordgo.MessageReference{
					ChannelID: m.chatId,
					MessageID: m.id,
				},
			})
		}

		if err != nil {
			m.logger().Error("Failed to reply, ignoring", "error", err)
		} else {
			m.logger().Info("Replied with rewritten URLs", "host", m.host, "count", len(m.rewrittenURLs))
		}
	}

	r.next.Execute(m)
}

func (r *TextResponseHandler) SetNext(next ContextHandler) {
	r.next = next
}
