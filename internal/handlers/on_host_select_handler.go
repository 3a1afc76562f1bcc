package handlers

import (
	"fmt"
	"log/slog"
	"strconv"

	dg "github.com/bwmarrin/discordgo"
	"github.com/napuu/tweet-embed-bot/internal/config"
)

type OnHostSelectHandler struct {
	Hosts config.ReplacementHosts
	next  ContextHandler
}

func (h *OnHostSelectHandler) Execute(m *Context) {
	slog.Debug("Entering OnHostSelectHandler")
	if m.Event == HostSelected {
		switch m.Service {
		case Telegram:
			cb := m.TelegramCallback
			if cb != nil {
				m.host = cb.Data
				if cb.Message != nil {
					m.id = strconv.Itoa(cb.Message.ID)
					if cb.Message.Chat != nil {
						m.chatId = strconv.FormatInt(cb.Message.Chat.ID, 10)
					}
					if cb.Message.ReplyTo != nil {
						m.originalId = strconv.Itoa(cb.Message.ReplyTo.ID)
					}
				}
			}
		case Discord:
			i := m.DiscordInteraction
			if i != nil && i.Interaction != nil && i.Type == dg.InteractionMessageComponent {
				data := i.MessageComponentData()
				if len(data.Values) > 0 {
					m.host = data.Values[0]
				}
				m.chatId = i.ChannelID
				if i.Message != nil {
					m.id = i.Message.ID
					if ref := i.Message.MessageReference; ref != nil {
						m.originalId = ref.MessageID
						if ref.ChannelID != "" {
							m.chatId = ref.ChannelID
						}
					}
				}
				h.acknowledgeDiscord(m)
			}
		}

		m.logger().Info("Switching host", "host", m.host, "reply_id", m.id, "original_id", m.originalId)
		if !h.Hosts.Contains(m.host) {
			m.fail(fmt.Errorf("%w: %q", ErrUnknownHost, m.host))
		}
	}
	h.next.Execute(m)
}

// Discord wants an answer to the interaction within three seconds, so it is
// deferred as an ephemeral reply right away and edited once done.
func (h *OnHostSelectHandler) acknowledgeDiscord(m *Context) {
	i := m.DiscordInteraction.Interaction
	err := m.DiscordSession.InteractionRespond(i, &dg.InteractionResponse{
		Type: dg.InteractionResponseDeferredChannelMessageWithSource,
		Data: &dg.InteractionResponseData{Flags: dg.MessageFlagsEphemeral},
	})
	if err != nil {
		m.logger().Warn("Failed to acknowledge interaction", "error", err)
		return
	}

	_, err = m.DiscordSession.InteractionResponseEdit(i, &dg.WebhookEdit{
		Embeds: &[]*dg.MessageEmbed{
			discordEmbed("Switching Host", fmt.Sprintf("Switching host to %s", m.host), progressColor),
		},
	})
	if err != nil {
		m.logger().Warn("Failed to show progress", "error", err)
	}
}

func (h *OnHostSelectHandler) SetNext(next ContextHandler) {
	h.next = next
}
