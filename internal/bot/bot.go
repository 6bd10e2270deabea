package bot

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Bot manages the Discord bot lifecycle and module coordination.
type Bot struct {
	config  *Config
	session *discordgo.Session
	client  InteractionClient
	modules []Module

	commandHandlers      map[string]InteractionHandler
	autocompleteHandlers map[string]InteractionHandler
	componentHandlers    map[string]InteractionHandler
	modalHandlers        map[string]InteractionHandler
}

// NewBot creates a new Bot instance with the given configuration.
func NewBot(cfg *Config) *Bot {
	return &Bot{
		config:               cfg,
		modules:              make([]Module, 0),
		commandHandlers:      make(map[string]InteractionHandler),
		autocompleteHandlers: make(map[string]InteractionHandler),
		componentHandlers:    make(map[string]InteractionHandler),
		modalHandlers:        make(map[string]InteractionHandler),
	}
}

// LoadModules loads modules from the global registry.
func (b *Bot) LoadModules() {
	b.modules = Modules()
}

// Start initializes the bot, connects to Discord, and registers commands.
func (b *Bot) Start() error {
	session, err := discordgo.New("Bot " + b.config.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	b.session = session
	b.client = NewSessionClient(session)

	if err := b.initModules(); err != nil {
		return fmt.Errorf("failed to initialize modules: %w", err)
	}

	b.buildHandlerMaps()

	b.session.AddHandler(b.handleInteraction)

	b.registerEventHandlers()

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.registerCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	slog.Info("started bot",
		"user_id", b.session.State.User.ID,
		"username", b.session.State.User.Username,
	)

	return nil
}

// Stop gracefully shuts down the bot.
func (b *Bot) Stop() error {
	for _, mod := range b.modules {
		if err := mod.Shutdown(); err != nil {
			slog.Warn("failed to shutdown module", "module", mod.Name(), "error", err)
		}
	}

	if b.session != nil {
		return b.session.Close()
	}

	return nil
}

// initModules initializes all loaded modules.
func (b *Bot) initModules() error {
	deps := ModuleDependencies{
		Config: b.config,
	}

	for _, mod := range b.modules {
		if err := mod.Init(deps); err != nil {
			return fmt.Errorf("failed to initialize %s module: %w", mod.Name(), err)
		}
		slog.Debug("initialized module", "module", mod.Name())
	}

	moduleNames := make([]string, len(b.modules))
	for i, mod := range b.modules {
		moduleNames[i] = mod.Name()
	}
	slog.Info("initialized modules", "modules", moduleNames)

	return nil
}

// buildHandlerMaps builds the per-interaction-type handler mappings.
func (b *Bot) buildHandlerMaps() {
	for _, mod := range b.modules {
		maps.Copy(b.commandHandlers, mod.CommandHandlers())

		if provider, ok := mod.(AutocompleteProvider); ok {
			maps.Copy(b.autocompleteHandlers, provider.AutocompleteHandlers())
		}
		if provider, ok := mod.(ComponentProvider); ok {
			maps.Copy(b.componentHandlers, provider.ComponentHandlers())
		}
		if provider, ok := mod.(ModalProvider); ok {
			maps.Copy(b.modalHandlers, provider.ModalHandlers())
		}
	}
}

// registerEventHandlers registers all module event handlers with the session.
func (b *Bot) registerEventHandlers() {
	for _, mod := range b.modules {
		for _, handler := range mod.EventHandlers() {
			b.session.AddHandler(handler)
		}
	}
}

// collectCommands gathers all commands from loaded modules.
func (b *Bot) collectCommands() []*discordgo.ApplicationCommand {
	var commands []*discordgo.ApplicationCommand
	for _, mod := range b.modules {
		commands = append(commands, mod.Commands()...)
	}
	return commands
}

// registerCommands registers all module commands with Discord.
func (b *Bot) registerCommands() error {
	commands := b.collectCommands()

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(
			b.session.State.User.ID,
			b.config.GuildID,
			cmd,
		)
		if err != nil {
			return fmt.Errorf("failed to register command %s: %w", cmd.Name, err)
		}
		slog.Debug("registered command", "command", cmd.Name)
	}

	return nil
}

// Embed colors for responses.
const (
	colorYellow = 0xFFFF00
	colorRed    = 0xFF0000
)

// handleInteraction routes incoming interactions to the appropriate handler.
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand,
		discordgo.InteractionApplicationCommandAutocomplete,
		discordgo.InteractionMessageComponent,
		discordgo.InteractionModalSubmit:
	default:
		return
	}

	handler, ok := b.lookupHandler(i.Interaction)
	name := InteractionName(i.Interaction)
	handle := NewInteractionHandle(b.client, i.Interaction)

	if !ok {
		if i.Type == discordgo.InteractionApplicationCommandAutocomplete {
			// Nothing sensible to suggest; an empty list keeps the
			// client from showing a spinner.
			_ = handle.Autocomplete([]*discordgo.ApplicationCommandOptionChoice{})
			return
		}
		slog.Warn("found no handler for interaction", "interaction", name)
		b.respondWithEmbed(handle, "Unknown Command", "This command is not recognized.", colorYellow)
		return
	}

	if err := handler(s, i, handle); err != nil {
		b.respondWithError(handle, name, err)
	}
}

// lookupHandler resolves the handler for an interaction. Component and
// modal custom IDs fall back to their prefix before the first colon, so one
// handler can serve a family of custom IDs.
func (b *Bot) lookupHandler(i *discordgo.Interaction) (InteractionHandler, bool) {
	name := InteractionName(i)

	var handlers map[string]InteractionHandler
	prefixed := false

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		handlers = b.commandHandlers
	case discordgo.InteractionApplicationCommandAutocomplete:
		handlers = b.autocompleteHandlers
	case discordgo.InteractionMessageComponent:
		handlers = b.componentHandlers
		prefixed = true
	case discordgo.InteractionModalSubmit:
		handlers = b.modalHandlers
		prefixed = true
	default:
		return nil, false
	}

	if handler, ok := handlers[name]; ok {
		return handler, true
	}
	if prefixed {
		if prefix, _, found := strings.Cut(name, ":"); found {
			if handler, ok := handlers[prefix]; ok {
				return handler, true
			}
		}
	}
	return nil, false
}

// respondWithError reports a handler failure back to the invoking user.
// Permission errors get a dedicated message; everything else a generic one.
func (b *Bot) respondWithError(handle *InteractionHandle, name string, err error) {
	var missingPerms *MissingPermissionsError
	if errors.As(err, &missingPerms) {
		b.respondWithEmbed(handle, "Missing Permissions",
			"I need the following permissions to run this command:\n"+
				PrettyPermissions(missingPerms.Permissions),
			colorYellow)
		return
	}

	slog.Error("failed to handle interaction", "interaction", name, "error", err)
	b.respondWithEmbed(handle, "Error",
		"An error occurred while processing your command.", colorRed)
}

// respondWithEmbed sends an embed response through the handle. Reply routes
// it as a followup automatically if the handler already responded or
// deferred before failing.
func (b *Bot) respondWithEmbed(handle *InteractionHandle, title, description string, color int) {
	reply := EmbedReply(&discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
	}).Ephemeral()

	if err := handle.Reply(reply); err != nil {
		slog.Error("failed to send embed response", "error", err)
	}
}
