package tags

import (
	"github.com/bwmarrin/discordgo"
	"github.com/glintlab/glintbot/internal/bot"
	"github.com/glintlab/glintbot/internal/modules/tags/application"
	"github.com/glintlab/glintbot/internal/modules/tags/infrastructure"
	"github.com/glintlab/glintbot/internal/modules/tags/presentation"
)

func init() {
	bot.Register(&TagsModule{})
}

// TagsModule provides the /tag command family: named text snippets stored
// per guild.
type TagsModule struct {
	handler *presentation.Handler
}

// Name returns the module name.
func (m *TagsModule) Name() string {
	return "tags"
}

// Commands returns the slash commands for this module.
func (m *TagsModule) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "tag",
			Description: "Store and recall named text snippets",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show a tag's content",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionString,
							Name:         "name",
							Description:  "Name of the tag",
							Required:     true,
							Autocomplete: true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create a new tag",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List all tags in this server",
				},
			},
		},
	}
}

// CommandHandlers returns the command handlers for this module.
func (m *TagsModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		"tag": m.handler.HandleCommand,
	}
}

// AutocompleteHandlers returns the autocomplete handlers for this module.
func (m *TagsModule) AutocompleteHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		"tag": m.handler.HandleAutocomplete,
	}
}

// ModalHandlers returns the modal submit handlers for this module.
func (m *TagsModule) ModalHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		presentation.CreateModalID: m.handler.HandleModalSubmit,
	}
}

// EventHandlers returns the event handlers for this module.
func (m *TagsModule) EventHandlers() []bot.EventHandler {
	return nil
}

// Init initializes the module.
func (m *TagsModule) Init(deps bot.ModuleDependencies) error {
	repo := infrastructure.NewMemoryRepository()
	service := application.NewTagService(repo)
	m.handler = presentation.NewHandler(service)
	return nil
}

// Shutdown cleans up module resources.
func (m *TagsModule) Shutdown() error {
	return nil
}

var (
	_ bot.Module               = (*TagsModule)(nil)
	_ bot.AutocompleteProvider = (*TagsModule)(nil)
	_ bot.ModalProvider        = (*TagsModule)(nil)
)
