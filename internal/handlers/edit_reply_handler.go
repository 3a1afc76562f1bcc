package handlers

import (
	"errors"
	"fmt"
	"log/slog"

	dg "github.com/bwmarrin/discordgo"
	tele "gopkg.in/telebot.v4"
)

type EditReplyHandler struct {
	next ContextHandler
}

func (r *EditReplyHandler) Execute(m *Context) {
	slog.Debug("Entering EditReplyHandler")
	if m.Event == HostSelected {
		if m.failure == nil {
			if err := r.editReply(m); err != nil {
				m.logger().Warn("Failed to edit reply", "error", err)
				m.fail(err)
			}
		}

		if m.failure != nil {
			m.logger().Warn("Error while switching host", "host", m.host, "error", m.failure)
			r.revert(m)
			r.notify(m, switchErrorTitle, describeFailure(m.failure), errorColor)
		} else {
			m.logger().Info("Switched host", "host", m.host, "reply_id", m.id)
			r.notify(m, "Host switched", fmt.Sprintf("Switched host to %s", m.host), successColor)
		}
	}

	r.next.Execute(m)
}

func (r *EditReplyHandler) editReply(m *Context) error {
	switch m.Service {
	case Telegram:
		_, err := m.Telebot.Edit(m.TelegramCallback.Message, m.textResponse, telegramHostMarkup(m.hostOptions))
		if errors.Is(err, tele.ErrSameMessageContent) {
			return nil
		}
		return err
	case Discord:
		components := discordHostSelect(m.hostOptions)
		_, err := m.DiscordSession.ChannelMessageEditComplex(&dg.MessageEdit{
			ID:         m.id,
			Channel:    m.DiscordInteraction.ChannelID,
			Content:    &m.textResponse,
			Components: &components,
		})
		return err
	}
	return nil
}

// revert puts back what the reply showed before the interaction. Discord
// clients keep showing the picked option until the message is edited.
// Telegram keyboards don't change on press, so there is nothing to undo.
func (r *EditReplyHandler) revert(m *Context) {
	if m.Service != Discord {
		return
	}

	previous := m.DiscordInteraction.Message
	if previous == nil {
		return
	}

	content := previous.Content
	components := previous.Components
	_, err := m.DiscordSession.ChannelMessageEditComplex(&dg.MessageEdit{
		ID:         previous.ID,
		Channel:    m.DiscordInteraction.ChannelID,
		Content:    &content,
		Components: &components,
	})
	if err != nil {
		m.logger().Warn("Failed to revert reply", "error", err)
	}
}

// notify shows a message only the user who picked the host can see.
func (r *EditReplyHandler) notify(m *Context, title, description string, color int) {
	var err error

	switch m.Service {
	case Telegram:
		resp := &tele.CallbackResponse{Text: description}
		if color == errorColor {
			resp.Text = title + ": " + description
			resp.ShowAlert = true
		}
		err = m.Telebot.Respond(m.TelegramCallback, resp)
	case Discord:
		_, err = m.DiscordSession.InteractionResponseEdit(m.DiscordInteraction.Interaction, &dg.WebhookEdit{
			Embeds: &[]*dg.MessageEmbed{discordEmbed(title, description, color)},
		})
	}

	if err != nil {
		m.logger().Warn("Failed to notify user", "error", err)
	}
}

func describeFailure(err error) string {
	switch {
	case errors.Is(err, ErrOriginalNotFound):
		return "Could not find original message."
	case errors.Is(err, ErrNoStatusURLs):
		return "No Twitter URLs found."
	case errors.Is(err, ErrUnknownHost):
		return "Unknown host."
	}
	return "Could not update the message."
}

func (r *EditReplyHandler) SetNext(next ContextHandler) {
	r.next = next
}
