package bot

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// InteractionClient abstracts the two wire operations Discord exposes for
// answering an interaction: creating the initial response and creating a
// followup message. This interface enables testing handle operations
// without a live Discord connection.
//
// Neither call is safe to retry after success: a repeated initial response
// is rejected by Discord and a repeated followup double-posts. Callers must
// not retry internally.
type InteractionClient interface {
	// CreateResponse sends the initial response to an interaction.
	CreateResponse(i *discordgo.Interaction, resp *discordgo.InteractionResponse) error

	// CreateFollowup sends a followup message to an already-responded
	// interaction.
	CreateFollowup(i *discordgo.Interaction, params *discordgo.WebhookParams) (*discordgo.Message, error)
}

// SessionClient implements InteractionClient using a live Discord session.
type SessionClient struct {
	session *discordgo.Session
}

// NewSessionClient creates a new SessionClient.
func NewSessionClient(s *discordgo.Session) *SessionClient {
	return &SessionClient{session: s}
}

// CreateResponse sends the initial response via the Discord API.
func (c *SessionClient) CreateResponse(
	i *discordgo.Interaction,
	resp *discordgo.InteractionResponse,
) error {
	return c.session.InteractionRespond(i, resp)
}

// CreateFollowup sends a followup message via the Discord API.
func (c *SessionClient) CreateFollowup(
	i *discordgo.Interaction,
	params *discordgo.WebhookParams,
) (*discordgo.Message, error) {
	return c.session.FollowupMessageCreate(i, true, params)
}

// MockClient is a test double for InteractionClient. It records every call
// in order and is safe for concurrent use.
type MockClient struct {
	mu        sync.Mutex
	Responses []*discordgo.InteractionResponse
	Followups []*discordgo.WebhookParams

	// ResponseErr and FollowupErr, when set, are returned by the
	// corresponding method instead of recording the call.
	ResponseErr error
	FollowupErr error
}

// CreateResponse records the initial response for testing.
func (m *MockClient) CreateResponse(
	_ *discordgo.Interaction,
	resp *discordgo.InteractionResponse,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ResponseErr != nil {
		return m.ResponseErr
	}
	m.Responses = append(m.Responses, resp)
	return nil
}

// CreateFollowup records the followup for testing.
func (m *MockClient) CreateFollowup(
	_ *discordgo.Interaction,
	params *discordgo.WebhookParams,
) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FollowupErr != nil {
		return nil, m.FollowupErr
	}
	m.Followups = append(m.Followups, params)
	return &discordgo.Message{}, nil
}

var (
	_ InteractionClient = (*SessionClient)(nil)
	_ InteractionClient = (*MockClient)(nil)
)
