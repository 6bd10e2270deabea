package bot

import "github.com/bwmarrin/discordgo"

// Reply describes a message to send in response to an interaction. The same
// value serializes to either wire shape: an initial interaction response or
// a followup message. The handle picks the shape; Reply only carries the
// fields.
type Reply struct {
	Content         string
	Embeds          []*discordgo.MessageEmbed
	Components      []discordgo.MessageComponent
	Files           []*discordgo.File
	AllowedMentions *discordgo.MessageAllowedMentions
	Flags           discordgo.MessageFlags
	TTS             bool
}

// TextReply creates a Reply containing only text content.
func TextReply(content string) Reply {
	return Reply{Content: content}
}

// EmbedReply creates a Reply containing a single embed.
func EmbedReply(embed *discordgo.MessageEmbed) Reply {
	return Reply{Embeds: []*discordgo.MessageEmbed{embed}}
}

// Ephemeral returns a copy of the reply only visible to the invoking user.
func (r Reply) Ephemeral() Reply {
	r.Flags |= discordgo.MessageFlagsEphemeral
	return r
}

// responseData converts the reply into initial-response payload data.
func (r Reply) responseData() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content:         r.Content,
		Embeds:          r.Embeds,
		Components:      r.Components,
		Files:           r.Files,
		AllowedMentions: r.AllowedMentions,
		Flags:           r.Flags,
		TTS:             r.TTS,
	}
}

// webhookParams converts the reply into followup payload data. Empty
// content is omitted on the wire rather than sent as an empty string.
func (r Reply) webhookParams() *discordgo.WebhookParams {
	return &discordgo.WebhookParams{
		Content:         r.Content,
		Embeds:          r.Embeds,
		Components:      r.Components,
		Files:           r.Files,
		AllowedMentions: r.AllowedMentions,
		Flags:           r.Flags,
		TTS:             r.TTS,
	}
}
