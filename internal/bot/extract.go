package bot

import "github.com/bwmarrin/discordgo"

// InteractionName returns the command name or custom ID identifying what
// the interaction targets. Returns the empty string for interaction types
// that carry neither (e.g. pings).
func InteractionName(i *discordgo.Interaction) string {
	switch i.Type {
	case discordgo.InteractionApplicationCommand,
		discordgo.InteractionApplicationCommandAutocomplete:
		return i.ApplicationCommandData().Name
	case discordgo.InteractionMessageComponent:
		return i.MessageComponentData().CustomID
	case discordgo.InteractionModalSubmit:
		return i.ModalSubmitData().CustomID
	default:
		return ""
	}
}

// InteractionUser returns the user that invoked the interaction, whether it
// happened in a guild or in DMs. Returns nil only for malformed payloads.
func InteractionUser(i *discordgo.Interaction) *discordgo.User {
	if i.User != nil {
		return i.User
	}
	if i.Member != nil {
		return i.Member.User
	}
	return nil
}

// FocusedOption returns the option currently being typed in an autocomplete
// interaction, descending into subcommands and subcommand groups. Returns
// nil when no option is focused.
func FocusedOption(
	options []*discordgo.ApplicationCommandInteractionDataOption,
) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range options {
		if opt.Focused {
			return opt
		}
		if found := FocusedOption(opt.Options); found != nil {
			return found
		}
	}
	return nil
}

// OptionString returns the string value of the named option, or the empty
// string if the option is absent.
func OptionString(
	options []*discordgo.ApplicationCommandInteractionDataOption,
	name string,
) string {
	for _, opt := range options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}

// ModalInputValue returns the submitted value of the text input with the
// given custom ID. The second return value reports whether the input was
// present.
func ModalInputValue(data discordgo.ModalSubmitInteractionData, customID string) (string, bool) {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actionsRow.Components {
			input, ok := component.(*discordgo.TextInput)
			if !ok {
				continue
			}
			if input.CustomID == customID {
				return input.Value, true
			}
		}
	}
	return "", false
}
