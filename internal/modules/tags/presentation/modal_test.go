package presentation

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/glintlab/glintbot/internal/bot"
)

func modalSubmitInteraction(guildID, name, content string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:      "1",
			Token:   "tok",
			GuildID: guildID,
			Type:    discordgo.InteractionModalSubmit,
			Data: discordgo.ModalSubmitInteractionData{
				CustomID: CreateModalID,
				Components: []discordgo.MessageComponent{
					&discordgo.ActionsRow{
						Components: []discordgo.MessageComponent{
							&discordgo.TextInput{CustomID: modalInputName, Value: name},
						},
					},
					&discordgo.ActionsRow{
						Components: []discordgo.MessageComponent{
							&discordgo.TextInput{CustomID: modalInputContent, Value: content},
						},
					},
				},
			},
			Member: &discordgo.Member{User: &discordgo.User{ID: "42"}},
		},
	}
}

func TestHandler_ModalSubmit_CreatesTag(t *testing.T) {
	handler := newTestHandler(t)
	client := &bot.MockClient{}

	i := modalSubmitInteraction(testGuildID, "Greeting", "hello there")
	handle := bot.NewInteractionHandle(client, i.Interaction)

	if err := handler.HandleModalSubmit(nil, i, handle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.Responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(client.Responses))
	}
	data := client.Responses[0].Data
	if len(data.Embeds) != 1 {
		t.Fatalf("expected 1 embed, got %d", len(data.Embeds))
	}
	if data.Embeds[0].Description != "Created tag `greeting`." {
		t.Errorf("unexpected embed description %q", data.Embeds[0].Description)
	}
}

func TestHandler_ModalSubmit_DuplicateName(t *testing.T) {
	handler := newTestHandler(t, "greeting")
	client := &bot.MockClient{}

	i := modalSubmitInteraction(testGuildID, "greeting", "other content")
	handle := bot.NewInteractionHandle(client, i.Interaction)

	if err := handler.HandleModalSubmit(nil, i, handle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.Responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(client.Responses))
	}
	data := client.Responses[0].Data
	if data.Flags&discordgo.MessageFlagsEphemeral == 0 {
		t.Error("expected duplicate-name reply to be ephemeral")
	}
	if data.Content != "A tag with that name already exists." {
		t.Errorf("unexpected content %q", data.Content)
	}
}

func TestHandler_ModalSubmit_EmptyName(t *testing.T) {
	handler := newTestHandler(t)
	client := &bot.MockClient{}

	i := modalSubmitInteraction(testGuildID, "   ", "content")
	handle := bot.NewInteractionHandle(client, i.Interaction)

	if err := handler.HandleModalSubmit(nil, i, handle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := client.Responses[0].Data
	if data.Flags&discordgo.MessageFlagsEphemeral == 0 {
		t.Error("expected validation reply to be ephemeral")
	}
	if data.Content != "Tag name must not be empty." {
		t.Errorf("unexpected content %q", data.Content)
	}
}
