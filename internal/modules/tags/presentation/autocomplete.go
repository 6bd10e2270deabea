package presentation

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/glintlab/glintbot/internal/bot"
	"github.com/glintlab/glintbot/internal/modules/tags/application"
)

// maxChoices is Discord's cap on autocomplete suggestions.
const maxChoices = 25

// HandleAutocomplete suggests existing tag names for the /tag show name
// option.
func (h *Handler) HandleAutocomplete(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	handle *bot.InteractionHandle,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return handle.Autocomplete([]*discordgo.ApplicationCommandOptionChoice{})
	}

	focused := bot.FocusedOption(i.ApplicationCommandData().Options)
	if focused == nil || focused.Name != "name" ||
		focused.Type != discordgo.ApplicationCommandOptionString {
		return handle.Autocomplete([]*discordgo.ApplicationCommandOptionChoice{})
	}

	output, err := h.service.Search(context.Background(), application.SearchTagsInput{
		GuildID: guildID,
		Prefix:  focused.StringValue(),
		Limit:   maxChoices,
	})
	if err != nil {
		return err
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(output.Names))
	for _, name := range output.Names {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: name,
		})
	}

	return handle.Autocomplete(choices)
}
