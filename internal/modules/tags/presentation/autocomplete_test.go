package presentation

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/glintlab/glintbot/internal/bot"
)

func autocompleteInteraction(guildID, query string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:      "1",
			Token:   "tok",
			GuildID: guildID,
			Type:    discordgo.InteractionApplicationCommandAutocomplete,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "tag",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					subOption("show", &discordgo.ApplicationCommandInteractionDataOption{
						Name:    "name",
						Type:    discordgo.ApplicationCommandOptionString,
						Value:   query,
						Focused: true,
					}),
				},
			},
		},
	}
}

func TestHandler_Autocomplete_SuggestsMatchingNames(t *testing.T) {
	handler := newTestHandler(t, "apple", "apricot", "banana")
	client := &bot.MockClient{}

	i := autocompleteInteraction(testGuildID, "ap")
	handle := bot.NewInteractionHandle(client, i.Interaction)

	if err := handler.HandleAutocomplete(nil, i, handle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.Responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(client.Responses))
	}
	resp := client.Responses[0]
	if resp.Type != discordgo.InteractionApplicationCommandAutocompleteResult {
		t.Fatalf("expected autocomplete response type, got %d", resp.Type)
	}

	want := []string{"apple", "apricot"}
	if len(resp.Data.Choices) != len(want) {
		t.Fatalf("expected %d choices, got %d", len(want), len(resp.Data.Choices))
	}
	for idx, name := range want {
		if resp.Data.Choices[idx].Name != name {
			t.Errorf("expected choice %d to be %q, got %q", idx, name, resp.Data.Choices[idx].Name)
		}
	}
}

func TestHandler_Autocomplete_OutsideGuild(t *testing.T) {
	handler := newTestHandler(t, "apple")
	client := &bot.MockClient{}

	i := autocompleteInteraction("", "ap")
	handle := bot.NewInteractionHandle(client, i.Interaction)

	if err := handler.HandleAutocomplete(nil, i, handle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.Responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(client.Responses))
	}
	if len(client.Responses[0].Data.Choices) != 0 {
		t.Errorf("expected no choices, got %d", len(client.Responses[0].Data.Choices))
	}
}
