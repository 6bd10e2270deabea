package bot

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// InteractionHandle provides convenient response methods for a single
// interaction while enforcing Discord's response protocol: exactly one
// initial response, any number of followups after it.
//
// The handle tracks whether the initial response has been sent. The flag is
// guarded by a mutex held across the whole decide-and-send step of each
// operation, so any number of goroutines may share one handle: exactly one
// of them wins the race to send the initial response, the rest either
// become followups (Reply) or fail with ErrAlreadyResponded (Defer,
// Autocomplete, Modal). The flag only advances after the wire call
// succeeds; a failed call leaves the interaction eligible for a retry by
// the caller. The handle never retries a wire call itself, because none of
// them is safe to repeat after success.
//
// The token authorizes responses to this specific interaction and must not
// be logged or persisted.
type InteractionHandle struct {
	client      InteractionClient
	interaction *discordgo.Interaction
	permissions int64

	mu        sync.Mutex
	responded bool
}

// NewInteractionHandle creates a handle for the given interaction. When the
// interaction carries no permission information (DM contexts), the bot is
// treated as having all permissions; make sure commands gated on
// CheckPermissions are safe to run in DMs.
func NewInteractionHandle(client InteractionClient, i *discordgo.Interaction) *InteractionHandle {
	// A zero bitset means the field was absent from the payload.
	perms := int64(discordgo.PermissionAll)
	if i.AppPermissions != 0 {
		perms = i.AppPermissions
	}

	return &InteractionHandle{
		client:      client,
		interaction: i,
		permissions: perms,
	}
}

// Interaction returns the interaction this handle is bound to.
func (h *InteractionHandle) Interaction() *discordgo.Interaction {
	return h.interaction
}

// CheckPermissions checks that the bot has the required permissions in the
// invocation context. Returns a *MissingPermissionsError wrapping the
// missing bits if it doesn't. Never touches the response state.
func (h *InteractionHandle) CheckPermissions(required int64) error {
	if missing := MissingPermissions(required, h.permissions); missing != 0 {
		return &MissingPermissionsError{Permissions: missing}
	}
	return nil
}

// Defer acknowledges the interaction without content, buying time past
// Discord's ~3 second initial-response deadline. The real content should
// follow via Reply, which will be routed as a followup. The ephemeral flag
// only affects that first Reply.
//
// Must be the first response: returns ErrAlreadyResponded, without a wire
// call, if the interaction was already responded to.
func (h *InteractionHandle) Defer(ephemeral bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.responded {
		return ErrAlreadyResponded
	}

	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	err := h.client.CreateResponse(h.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: flags,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to defer interaction: %w", err)
	}

	h.responded = true
	return nil
}

// Reply sends the reply as the initial response if none was sent yet, or as
// a followup message otherwise. This is the primary way to answer an
// interaction and is safe to call any number of times, from any number of
// goroutines.
func (h *InteractionHandle) Reply(reply Reply) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.responded {
		if _, err := h.client.CreateFollowup(h.interaction, reply.webhookParams()); err != nil {
			return fmt.Errorf("failed to create followup message: %w", err)
		}
		return nil
	}

	err := h.client.CreateResponse(h.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: reply.responseData(),
	})
	if err != nil {
		return fmt.Errorf("failed to create interaction response: %w", err)
	}

	h.responded = true
	return nil
}

// Autocomplete sends autocomplete suggestions for a focused option. Must be
// the first response: returns ErrAlreadyResponded, without a wire call, if
// the interaction was already responded to.
func (h *InteractionHandle) Autocomplete(choices []*discordgo.ApplicationCommandOptionChoice) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.responded {
		return ErrAlreadyResponded
	}

	err := h.client.CreateResponse(h.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create autocomplete response: %w", err)
	}

	h.responded = true
	return nil
}

// Modal opens a modal prompt. Each text input is wrapped in its own action
// row, as Discord requires one row per input. Must be the first response:
// returns ErrAlreadyResponded, without a wire call, if the interaction was
// already responded to.
func (h *InteractionHandle) Modal(customID, title string, inputs []discordgo.TextInput) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.responded {
		return ErrAlreadyResponded
	}

	rows := make([]discordgo.MessageComponent, 0, len(inputs))
	for _, input := range inputs {
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{input},
		})
	}

	err := h.client.CreateResponse(h.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   customID,
			Title:      title,
			Components: rows,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create modal response: %w", err)
	}

	h.responded = true
	return nil
}
