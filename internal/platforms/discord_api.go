package platforms

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/napuu/tweet-embed-bot/internal/chain"
	"github.com/napuu/tweet-embed-bot/internal/config"
	"github.com/napuu/tweet-embed-bot/internal/handlers"
)

func botUser(s *discordgo.Session) *discordgo.User {
	if s.State == nil {
		return nil
	}
	return s.State.User
}

func shouldHandleDiscordMessage(self *discordgo.User, m *discordgo.MessageCreate) bool {
	if self == nil {
		slog.Warn("Discord bot user is not known yet, ignoring message")
		return false
	}
	if m.Message == nil || m.Author == nil {
		return false
	}
	// Ignore all messages created by the bot itself
	return m.Author.ID != self.ID
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func shouldHandleDiscordInteraction(self *discordgo.User, i *discordgo.InteractionCreate) bool {
	if i.Interaction == nil || i.Type != discordgo.InteractionMessageComponent {
		return false
	}
	if i.MessageComponentData().CustomID != handlers.HostSelectCustomID {
		return false
	}
	if self == nil {
		slog.Warn("Discord bot user is not known yet, ignoring interaction")
		return false
	}
	user := interactionUser(i)
	return user != nil && user.ID != self.ID
}

func wrapDiscoHandler(chain *chain.HandlerChain) func(s *discordgo.Session, m *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if !shouldHandleDiscordMessage(botUser(s), m) {
			return
		}

		chain.Process(&handlers.Context{
			Service:        handlers.Discord,
			Event:          handlers.MessageCreated,
			DiscordSession: s,
			DiscordMessage: m,
		})
	}
}

func wrapDiscoInteractionHandler(chain *chain.HandlerChain) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !shouldHandleDiscordInteraction(botUser(s), i) {
			return
		}

		chain.Process(&handlers.Context{
			Service:            handlers.Discord,
			Event:              handlers.HostSelected,
			DiscordSession:     s,
			DiscordInteraction: i,
		})
	}
}

// RunDiscordBot opens the gateway connection. The caller owns the returned
// session and closes it on shutdown.
func RunDiscordBot(hosts config.ReplacementHosts) (*discordgo.Session, error) {
	token := config.FromEnv().DISCORD_TOKEN
	if token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is not set")
	}

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	chain := chain.NewChainOfResponsibility(hosts)

	dg.AddHandler(wrapDiscoHandler(chain))
	dg.AddHandler(wrapDiscoInteractionHandler(chain))
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		slog.Info("Discord connection ready", "user", r.User.Username, "guilds", len(r.Guilds))
	})

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	err = dg.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening Discord connection: %w", err)
	}

	return dg, nil
}
