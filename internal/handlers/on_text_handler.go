package handlers

import (
	"log/slog"
	"strconv"
)

type OnTextHandler struct {
	next ContextHandler
}

func (mp *OnTextHandler) Execute(m *Context) {
	slog.Debug("Entering OnTextHandler")
	if m.Event == MessageCreated {
		switch m.Service {
		case Telegram:
			message := m.TelegramMessage
			if message != nil {
				m.rawText = message.Text
				if m.rawText == "" {
					m.rawText = message.Caption
				}
				m.id = strconv.Itoa(message.ID)
				if message.Chat != nil {
					m.chatId = strconv.FormatInt(message.Chat.ID, 10)
				}
			}
		case Discord:
			message := m.DiscordMessage
			if message != nil && message.Message != nil {
				m.rawText = message.Content
				m.id = message.ID
				m.chatId = message.ChannelID
			}
		}
		m.logger().Info("Handling message", "message_id", m.id, "chat_id", m.chatId, "content", m.rawText)
	}
	mp.next.Execute(m)
}

func (mp *OnTextHandler) SetNext(next ContextHandler) {
	mp.next = next
}
