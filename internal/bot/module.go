package bot

import "github.com/bwmarrin/discordgo"

// InteractionHandler handles a Discord interaction through its handle.
type InteractionHandler func(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	h *InteractionHandle,
) error

// EventHandler is a generic handler for any Discord event.
// It should be a function matching one of discordgo's handler signatures,
// e.g., func(s *discordgo.Session, m *discordgo.MessageCreate)
type EventHandler any

// ModuleDependencies provides dependencies that modules may need during initialization.
type ModuleDependencies struct {
	Config *Config
}

// Module defines the interface that all bot modules must implement.
type Module interface {
	// Name returns the unique identifier for this module.
	Name() string

	// Commands returns the slash commands that this module provides.
	Commands() []*discordgo.ApplicationCommand

	// CommandHandlers returns a map of command names to their handlers.
	CommandHandlers() map[string]InteractionHandler

	// EventHandlers returns event handlers for this module.
	// Each handler should match a discordgo handler signature.
	EventHandlers() []EventHandler

	// Init initializes the module with the provided dependencies.
	Init(deps ModuleDependencies) error

	// Shutdown gracefully shuts down the module.
	Shutdown() error
}

// AutocompleteProvider is an optional interface for modules whose commands
// have autocomplete options.
type AutocompleteProvider interface {
	// AutocompleteHandlers returns a map of command names to handlers for
	// their autocomplete interactions.
	AutocompleteHandlers() map[string]InteractionHandler
}

// ComponentProvider is an optional interface for modules that respond to
// message component interactions (buttons, select menus).
type ComponentProvider interface {
	// ComponentHandlers returns a map of component custom IDs to their
	// handlers. A custom ID of the form "prefix:rest" is matched by its
	// prefix when no exact entry exists.
	ComponentHandlers() map[string]InteractionHandler
}

// ModalProvider is an optional interface for modules that open modals.
type ModalProvider interface {
	// ModalHandlers returns a map of modal custom IDs to their submit
	// handlers. A custom ID of the form "prefix:rest" is matched by its
	// prefix when no exact entry exists.
	ModalHandlers() map[string]InteractionHandler
}
