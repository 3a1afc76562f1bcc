package platforms

import (
	"fmt"
	"time"

	"github.com/napuu/tweet-embed-bot/internal/chain"
	"github.com/napuu/tweet-embed-bot/internal/config"
	"github.com/napuu/tweet-embed-bot/internal/handlers"

	tele "gopkg.in/telebot.v4"
)

func isOwnTelegramUpdate(me, sender *tele.User) bool {
	return me != nil && sender != nil && me.ID == sender.ID
}

func wrapTeleHandler(bot *tele.Bot, chain *chain.HandlerChain) func(c tele.Context) error {
	return func(c tele.Context) error {
		if c.Message() == nil || isOwnTelegramUpdate(bot.Me, c.Sender()) {
			return nil
		}
		chain.Process(&handlers.Context{
			Service:         handlers.Telegram,
			Event:           handlers.MessageCreated,
			Telebot:         bot,
			TelegramMessage: c.Message(),
		})
		return nil
	}
}

func wrapTeleHostSelectHandler(bot *tele.Bot, chain *chain.HandlerChain) func(c tele.Context) error {
	return func(c tele.Context) error {
		if c.Callback() == nil || isOwnTelegramUpdate(bot.Me, c.Sender()) {
			return nil
		}
		chain.Process(&handlers.Context{
			Service:          handlers.Telegram,
			Event:            handlers.HostSelected,
			Telebot:          bot,
			TelegramCallback: c.Callback(),
		})
		return nil
	}
}

// RunTelegramBot starts long polling in the background. Stop the returned
// bot on shutdown.
func RunTelegramBot(hosts config.ReplacementHosts) (*tele.Bot, error) {
	bot, err := getTelegramBot()
	if err != nil {
		return nil, err
	}
	chain := chain.NewChainOfResponsibility(hosts)

	bot.Handle(tele.OnText, wrapTeleHandler(bot, chain))
	bot.Handle(tele.OnPhoto, wrapTeleHandler(bot, chain))
	bot.Handle(&handlers.TelegramHostSelectButton, wrapTeleHostSelectHandler(bot, chain))

	go bot.Start()

	return bot, nil
}

func getTelegramBot() (*tele.Bot, error) {
	token := config.FromEnv().TELEGRAM_TOKEN
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	pref := tele.Settings{
		Token: token,
		Poller: &tele.LongPoller{
			Timeout: 10 * time.Second,
			AllowedUpdates: []string{
				"message",
				"callback_query",
			},
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("error creating Telegram bot: %w", err)
	}

	return b, nil
}
