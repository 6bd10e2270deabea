package presentation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/glintlab/glintbot/internal/bot"
	"github.com/glintlab/glintbot/internal/modules/tags/application"
	"github.com/glintlab/glintbot/internal/modules/tags/domain"
)

// CreateModalID identifies the tag creation modal.
const CreateModalID = "tag:create"

// Custom IDs of the creation modal's text inputs.
const (
	modalInputName    = "name"
	modalInputContent = "content"
)

// Embed colors.
const (
	colorSuccess = 0x08c404
	colorNeutral = 0x5865F2
)

// Handler handles the /tag command family.
type Handler struct {
	service *application.TagService
}

// NewHandler creates a new Handler.
func NewHandler(service *application.TagService) *Handler {
	return &Handler{service: service}
}

// HandleCommand routes the /tag subcommands.
func (h *Handler) HandleCommand(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	handle *bot.InteractionHandle,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return handle.Reply(bot.TextReply("Tags can only be used in a server.").Ephemeral())
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return fmt.Errorf("missing subcommand for /tag")
	}
	sub := options[0]

	ctx := context.Background()

	switch sub.Name {
	case "show":
		return h.handleShow(ctx, guildID, sub, handle)
	case "create":
		return h.handleCreate(handle)
	case "list":
		return h.handleList(ctx, guildID, handle)
	default:
		return fmt.Errorf("unknown /tag subcommand %q", sub.Name)
	}
}

// handleShow replies with the content of the named tag.
func (h *Handler) handleShow(
	ctx context.Context,
	guildID snowflake.ID,
	sub *discordgo.ApplicationCommandInteractionDataOption,
	handle *bot.InteractionHandle,
) error {
	name := bot.OptionString(sub.Options, "name")

	output, err := h.service.Get(ctx, application.GetTagInput{
		GuildID: guildID,
		Name:    name,
	})
	if errors.Is(err, domain.ErrTagNotFound) {
		return handle.Reply(
			bot.TextReply(fmt.Sprintf("There is no tag named `%s`.", name)).Ephemeral(),
		)
	}
	if err != nil {
		return err
	}

	return handle.Reply(bot.TextReply(output.Tag.Content))
}

// handleCreate opens the tag creation modal. Requires Manage Messages so
// random members can't fill the guild with tags.
func (h *Handler) handleCreate(handle *bot.InteractionHandle) error {
	if err := handle.CheckPermissions(discordgo.PermissionManageMessages); err != nil {
		return err
	}

	return handle.Modal(CreateModalID, "Create Tag", []discordgo.TextInput{
		{
			CustomID:  modalInputName,
			Label:     "Name",
			Style:     discordgo.TextInputShort,
			Required:  true,
			MaxLength: domain.MaxNameLength,
		},
		{
			CustomID:    modalInputContent,
			Label:       "Content",
			Style:       discordgo.TextInputParagraph,
			Placeholder: "What the tag should say",
			Required:    true,
			MaxLength:   domain.MaxContentLength,
		},
	})
}

// handleList defers, then sends the tag listing as a followup. The listing
// itself is fast today, but deferring keeps the command within Discord's
// deadline once the repository moves to real storage.
func (h *Handler) handleList(
	ctx context.Context,
	guildID snowflake.ID,
	handle *bot.InteractionHandle,
) error {
	if err := handle.Defer(false); err != nil {
		return err
	}

	output, err := h.service.List(ctx, application.ListTagsInput{GuildID: guildID})
	if err != nil {
		return err
	}

	if len(output.Tags) == 0 {
		return handle.Reply(bot.TextReply("This server has no tags yet."))
	}

	names := make([]string, len(output.Tags))
	for idx, tag := range output.Tags {
		names[idx] = fmt.Sprintf("`%s`", tag.Name)
	}

	return handle.Reply(bot.EmbedReply(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Tags (%d)", len(output.Tags)),
		Description: strings.Join(names, ", "),
		Color:       colorNeutral,
	}))
}

// HandleModalSubmit creates the tag described by a submitted creation modal.
func (h *Handler) HandleModalSubmit(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	handle *bot.InteractionHandle,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return handle.Reply(bot.TextReply("Tags can only be used in a server.").Ephemeral())
	}

	data := i.ModalSubmitData()
	name, _ := bot.ModalInputValue(data, modalInputName)
	content, _ := bot.ModalInputValue(data, modalInputContent)

	var authorID snowflake.ID
	if user := bot.InteractionUser(i.Interaction); user != nil {
		if parsed, err := snowflake.Parse(user.ID); err == nil {
			authorID = parsed
		}
	}

	output, err := h.service.Create(context.Background(), application.CreateTagInput{
		GuildID:  guildID,
		Name:     name,
		Content:  content,
		AuthorID: authorID,
	})
	if isUserError(err) {
		return handle.Reply(bot.TextReply(capitalize(err.Error()) + ".").Ephemeral())
	}
	if err != nil {
		return err
	}

	return handle.Reply(bot.EmbedReply(&discordgo.MessageEmbed{
		Description: fmt.Sprintf("Created tag `%s`.", output.Tag.Name),
		Color:       colorSuccess,
	}))
}

// isUserError reports whether the error is caused by the user's input
// rather than a system failure, and should be shown to them verbatim.
func isUserError(err error) bool {
	return errors.Is(err, domain.ErrTagExists) ||
		errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrNameTooLong) ||
		errors.Is(err, domain.ErrEmptyContent) ||
		errors.Is(err, domain.ErrContentTooLong)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
