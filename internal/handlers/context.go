package handlers

import (
	"errors"
	"log/slog"

	dg "github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	tele "gopkg.in/telebot.v4"
)

type Service int

const (
	Telegram Service = iota + 1
	Discord
)

func (s Service) String() string {
	switch s {
	case Telegram:
		return "telegram"
	case Discord:
		return "discord"
	}
	return "unknown"
}

type Event int

const (
	// A user posted a new message.
	MessageCreated Event = iota + 1
	// A user picked another host from the selector attached to a reply.
	HostSelected
)

type ContextHandler interface {
	Execute(*Context)
	SetNext(ContextHandler)
}

var (
	ErrOriginalNotFound = errors.New("could not find original message")
	ErrNoStatusURLs     = errors.New("no Twitter URLs found")
	ErrUnknownHost      = errors.New("unknown replacement host")
)

// DiscordSession is the part of *discordgo.Session the handlers use.
type DiscordSession interface {
	ChannelMessage(channelID, messageID string, options ...dg.RequestOption) (*dg.Message, error)
	ChannelMessageSendComplex(channelID string, data *dg.MessageSend, options ...dg.RequestOption) (*dg.Message, error)
	ChannelMessageEditComplex(m *dg.MessageEdit, options ...dg.RequestOption) (*dg.Message, error)
	InteractionRespond(interaction *dg.Interaction, resp *dg.InteractionResponse, options ...dg.RequestOption) error
	InteractionResponseEdit(interaction *dg.Interaction, newresp *dg.WebhookEdit, options ...dg.RequestOption) (*dg.Message, error)
}

// TelegramBot is the part of *telebot.Bot the handlers use.
type TelegramBot interface {
	Reply(to *tele.Message, what interface{}, opts ...interface{}) (*tele.Message, error)
	Edit(msg tele.Editable, what interface{}, opts ...interface{}) (*tele.Message, error)
	Respond(c *tele.Callback, resp ...*tele.CallbackResponse) error
}

type HostOption struct {
	Host     string
	Selected bool
}

type Context struct {
	Service Service
	Event   Event

	eventID string

	// Text the links are extracted from. For HostSelected events this is
	// the text of the original message, not of the bot reply.
	rawText string
	// MessageCreated: the user's message. HostSelected: the bot reply.
	id     string
	chatId string
	// HostSelected only, the message the bot reply points to.
	originalId string

	host          string
	rewrittenURLs []string
	textResponse  string
	hostOptions   []HostOption

	// Set when a host switch can't be completed. The reply is then reverted
	// and the user gets an ephemeral error.
	failure error

	DiscordSession     DiscordSession
	DiscordMessage     *dg.MessageCreate
	DiscordInteraction *dg.InteractionCreate

	Telebot          TelegramBot
	TelegramMessage  *tele.Message
	TelegramCallback *tele.Callback
}

func (m *Context) logger() *slog.Logger {
	if m.eventID == "" {
		m.eventID = uuid.NewString()
	}
	return slog.With("event_id", m.eventID, "service", m.Service.String())
}

func (m *Context) fail(err error) {
	if m.failure == nil {
		m.failure = err
	}
}
