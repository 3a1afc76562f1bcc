package handlers

import (
	dg "github.com/bwmarrin/discordgo"
	tele "gopkg.in/telebot.v4"
)

const (
	HostSelectCustomID    = "twitterEmbedBotHostSelect"
	HostSelectPlaceholder = "Switch host"

	progressColor = 0xFFFFFF
	errorColor    = 0xFF0000
	successColor  = 0x1DA1F2

	switchErrorTitle = "Error while switching host"
)

// TelegramHostSelectButton is registered with the bot so that callbacks of
// every host button are routed to the same handler. The payload is the host.
var TelegramHostSelectButton = tele.Btn{Unique: "hostselect"}

func discordHostSelect(options []HostOption) []dg.MessageComponent {
	menuOptions := make([]dg.SelectMenuOption, 0, len(options))
	for _, opt := range options {
		menuOptions = append(menuOptions, dg.SelectMenuOption{
			Label:   opt.Host,
			Value:   opt.Host,
			Default: opt.Selected,
		})
	}

	return []dg.MessageComponent{
		dg.ActionsRow{
			Components: []dg.MessageComponent{
				dg.SelectMenu{
					MenuType:    dg.StringSelectMenu,
					CustomID:    HostSelectCustomID,
					Placeholder: HostSelectPlaceholder,
					Options:     menuOptions,
				},
			},
		},
	}
}

func telegramHostMarkup(options []HostOption) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(options))
	for _, opt := range options {
		label := opt.Host
		if opt.Selected {
			label = "✅ " + label
		}
		rows = append(rows, markup.Row(markup.Data(label, TelegramHostSelectButton.Unique, opt.Host)))
	}
	markup.Inline(rows...)
	return markup
}

func discordEmbed(title, description string, color int) *dg.MessageEmbed {
	return &dg.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
	}
}
