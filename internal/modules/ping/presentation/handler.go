package presentation

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/glintlab/glintbot/internal/bot"
	"github.com/glintlab/glintbot/internal/modules/ping/application"
)

// PingHandler handles the /ping command.
type PingHandler struct {
	interactor *application.PingInteractor
}

// NewPingHandler creates a new PingHandler.
func NewPingHandler() *PingHandler {
	return &PingHandler{
		interactor: application.NewPingInteractor(),
	}
}

// Handle processes the ping command and sends the response.
func (h *PingHandler) Handle(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	handle *bot.InteractionHandle,
) error {
	var latency time.Duration
	if s != nil {
		latency = s.HeartbeatLatency()
	}

	result := h.interactor.Execute(latency)

	return handle.Reply(bot.TextReply(result.Message).Ephemeral())
}
