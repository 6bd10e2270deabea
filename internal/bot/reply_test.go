package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestReply_Ephemeral(t *testing.T) {
	reply := TextReply("hello").Ephemeral()

	if reply.Flags&discordgo.MessageFlagsEphemeral == 0 {
		t.Error("expected ephemeral flag to be set")
	}
	if reply.Content != "hello" {
		t.Errorf("expected content %q, got %q", "hello", reply.Content)
	}
}

func TestReply_Ephemeral_DoesNotMutateOriginal(t *testing.T) {
	original := TextReply("hello")
	_ = original.Ephemeral()

	if original.Flags != 0 {
		t.Error("expected original reply to be unchanged")
	}
}

func TestReply_BothWireShapesCarrySameFields(t *testing.T) {
	mentions := &discordgo.MessageAllowedMentions{
		Parse: []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeUsers},
	}
	reply := Reply{
		Content:         "payload",
		Embeds:          []*discordgo.MessageEmbed{{Title: "embed"}},
		Components:      []discordgo.MessageComponent{discordgo.ActionsRow{}},
		Files:           []*discordgo.File{{Name: "file.txt"}},
		AllowedMentions: mentions,
		Flags:           discordgo.MessageFlagsEphemeral,
		TTS:             true,
	}

	data := reply.responseData()
	if data.Content != reply.Content ||
		len(data.Embeds) != 1 ||
		len(data.Components) != 1 ||
		len(data.Files) != 1 ||
		data.AllowedMentions != mentions ||
		data.Flags != reply.Flags ||
		!data.TTS {
		t.Errorf("initial response data dropped fields: %+v", data)
	}

	params := reply.webhookParams()
	if params.Content != reply.Content ||
		len(params.Embeds) != 1 ||
		len(params.Components) != 1 ||
		len(params.Files) != 1 ||
		params.AllowedMentions != mentions ||
		params.Flags != reply.Flags ||
		!params.TTS {
		t.Errorf("followup params dropped fields: %+v", params)
	}
}

func TestEmbedReply(t *testing.T) {
	embed := &discordgo.MessageEmbed{Title: "only"}
	reply := EmbedReply(embed)

	if len(reply.Embeds) != 1 || reply.Embeds[0] != embed {
		t.Error("expected reply to carry the embed")
	}
	if reply.Content != "" {
		t.Errorf("expected empty content, got %q", reply.Content)
	}
}
