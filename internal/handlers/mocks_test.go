package handlers

import (
	"github.com/bwmarrin/discordgo"
	"github.com/napuu/tweet-embed-bot/internal/config"
	tele "gopkg.in/telebot.v4"
)

var testHosts = config.ReplacementHosts{"vxtwitter.com", "fxtwitter.com", "fixupx.com"}

// newTestChain wires the handlers the same way the chain package does.
func newTestChain() ContextHandler {
	onText := &OnTextHandler{}
	onHostSelect := &OnHostSelectHandler{Hosts: testHosts}
	resolve := &ResolveOriginalHandler{}
	rewrite := &URLRewriteHandler{Hosts: testHosts}
	construct := &ConstructTextResponseHandler{Hosts: testHosts}
	reply := &TextResponseHandler{}
	edit := &EditReplyHandler{}

	onText.SetNext(onHostSelect)
	onHostSelect.SetNext(resolve)
	resolve.SetNext(rewrite)
	rewrite.SetNext(construct)
	construct.SetNext(reply)
	reply.SetNext(edit)
	edit.SetNext(&EndOfChainHandler{})

	return onText
}

type interactionResponseEdit struct {
	interaction *discordgo.Interaction
	edit        *discordgo.WebhookEdit
}

// mockDiscordSession records every call for assertions
type mockDiscordSession struct {
	channelMessageFn func(channelID, messageID string) (*discordgo.Message, error)
	sendComplexErr   error
	editComplexFn    func(m *discordgo.MessageEdit) error

	fetched       []string
	sent          []*discordgo.MessageSend
	sentChannels  []string
	edits         []*discordgo.MessageEdit
	responses     []*discordgo.InteractionResponse
	responseEdits []interactionResponseEdit
}

func (m *mockDiscordSession) ChannelMessage(channelID, messageID string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.fetched = append(m.fetched, channelID+"/"+messageID)
	if m.channelMessageFn != nil {
		return m.channelMessageFn(channelID, messageID)
	}
	return &discordgo.Message{ID: messageID, ChannelID: channelID}, nil
}

func (m *mockDiscordSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.sent = append(m.sent, data)
	m.sentChannels = append(m.sentChannels, channelID)
	if m.sendComplexErr != nil {
		return nil, m.sendComplexErr
	}
	return &discordgo.Message{ID: "reply-id", ChannelID: channelID, Content: data.Content}, nil
}

func (m *mockDiscordSession) ChannelMessageEditComplex(edit *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.edits = append(m.edits, edit)
	if m.editComplexFn != nil {
		if err := m.editComplexFn(edit); err != nil {
			return nil, err
		}
	}
	return &discordgo.Message{ID: edit.ID, ChannelID: edit.Channel}, nil
}

func (m *mockDiscordSession) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	m.responses = append(m.responses, resp)
	return nil
}

func (m *mockDiscordSession) InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.responseEdits = append(m.responseEdits, interactionResponseEdit{interaction: interaction, edit: newresp})
	return &discordgo.Message{}, nil
}

func (m *mockDiscordSession) lastResponseEmbed() *discordgo.MessageEmbed {
	if len(m.responseEdits) == 0 {
		return nil
	}
	embeds := m.responseEdits[len(m.responseEdits)-1].edit.Embeds
	if embeds == nil || len(*embeds) == 0 {
		return nil
	}
	return (*embeds)[0]
}

type telegramReply struct {
	to     *tele.Message
	what   interface{}
	markup *tele.ReplyMarkup
}

type telegramEdit struct {
	msg    tele.Editable
	what   interface{}
	markup *tele.ReplyMarkup
}

type mockTelegramBot struct {
	editErr error

	replies   []telegramReply
	edits     []telegramEdit
	responses []*tele.CallbackResponse
}

func markupFrom(opts []interface{}) *tele.ReplyMarkup {
	for _, opt := range opts {
		if markup, ok := opt.(*tele.ReplyMarkup); ok {
			return markup
		}
	}
	return nil
}

func (b *mockTelegramBot) Reply(to *tele.Message, what interface{}, opts ...interface{}) (*tele.Message, error) {
	b.replies = append(b.replies, telegramReply{to: to, what: what, markup: markupFrom(opts)})
	return &tele.Message{ID: 999}, nil
}

func (b *mockTelegramBot) Edit(msg tele.Editable, what interface{}, opts ...interface{}) (*tele.Message, error) {
	b.edits = append(b.edits, telegramEdit{msg: msg, what: what, markup: markupFrom(opts)})
	if b.editErr != nil {
		return nil, b.editErr
	}
	return &tele.Message{}, nil
}

func (b *mockTelegramBot) Respond(c *tele.Callback, resp ...*tele.CallbackResponse) error {
	b.responses = append(b.responses, resp...)
	return nil
}
