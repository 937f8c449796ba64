package services

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"catcare/internal/models/response_models"
	"catcare/pkg/utils"
)

const welcomeText = "🩺 Welcome to CatCare AI! I am your intelligent veterinary assistant powered by advanced diagnostic algorithms. Describe your cat symptoms and I will provide professional-grade analysis and recommendations."

type ChatServiceInterface interface {
	Messages() []response_models.ChatMessage
	HasResponses() bool
	IsProcessing() bool
	// Send consumes quota, plays the thinking animation and appends the bot
	// reply. A second call while one is in flight fails with ErrChatBusy.
	Send(ctx context.Context, text string) (*response_models.ChatMessage, error)
	// Refresh replaces the transcript with a fresh welcome message.
	Refresh()
	// Reset restores the initial transcript.
	Reset()
}

type ChatService struct {
	advice        AdviceServiceInterface
	subscriptions SubscriptionServiceInterface
	log           *zap.Logger

	mu         sync.Mutex
	messages   []response_models.ChatMessage
	processing bool
}

func NewChatService(
	advice AdviceServiceInterface,
	subscriptions SubscriptionServiceInterface,
	log *zap.Logger,
) ChatServiceInterface {
	return &ChatService{
		advice:        advice,
		subscriptions: subscriptions,
		log:           log,
		messages:      []response_models.ChatMessage{initialWelcome()},
	}
}

func initialWelcome() response_models.ChatMessage {
	return response_models.ChatMessage{
		ID:         "welcome",
		Role:       response_models.RoleBot,
		Text:       welcomeText,
		Confidence: 100,
		Urgency:    response_models.UrgencyLow,
	}
}

func (c *ChatService) Messages() []response_models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]response_models.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *ChatService) HasResponses() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages) > 1
}

func (c *ChatService) IsProcessing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.processing
}

func (c *ChatService) Send(ctx context.Context, text string) (*response_models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, utils.ErrInvalidRequest
	}

	c.mu.Lock()
	if c.processing {
		c.mu.Unlock()
		return nil, utils.ErrChatBusy
	}
	c.processing = true
	c.mu.Unlock()
	defer c.setProcessing(false)

	if err := c.subscriptions.MakeAIRequest(ctx); err != nil {
		return nil, err
	}

	userMsg := response_models.ChatMessage{
		ID:   utils.NewID(),
		Role: response_models.RoleUser,
		Text: text,
	}
	thinkingID := utils.NewID()
	c.append(userMsg, response_models.ChatMessage{
		ID:   thinkingID,
		Role: response_models.RoleThinking,
	})

	onStep := func(message string) {
		c.updateText(thinkingID, message)
	}

	resp := c.advice.ProcessMessage(text)
	if err := c.advice.SimulateThinking(ctx, onStep); err != nil {
		c.remove(thinkingID)
		return nil, err
	}
	if resp.RequiresDoctor {
		if err := c.advice.SimulateDoctorSearch(ctx, onStep); err != nil {
			c.remove(thinkingID)
			return nil, err
		}
	}

	botMsg := response_models.ChatMessage{
		ID:              utils.NewID(),
		Role:            response_models.RoleBot,
		Text:            resp.Text,
		Confidence:      resp.Confidence,
		Urgency:         resp.Urgency,
		Recommendations: resp.Recommendations,
		DoctorInfo:      resp.DoctorInfo,
	}
	c.replace(thinkingID, botMsg)

	c.log.Debug("chat message answered",
		zap.String("urgency", string(resp.Urgency)),
		zap.Bool("requires_doctor", resp.RequiresDoctor))
	return &botMsg, nil
}

func (c *ChatService) Refresh() {
	welcome := initialWelcome()
	welcome.ID = "welcome-" + utils.NewID()

	c.mu.Lock()
	c.messages = []response_models.ChatMessage{welcome}
	c.processing = false
	c.mu.Unlock()
}

func (c *ChatService) Reset() {
	c.mu.Lock()
	c.messages = []response_models.ChatMessage{initialWelcome()}
	c.processing = false
	c.mu.Unlock()
}

func (c *ChatService) setProcessing(v bool) {
	c.mu.Lock()
	c.processing = v
	c.mu.Unlock()
}

func (c *ChatService) append(msgs ...response_models.ChatMessage) {
	c.mu.Lock()
	c.messages = append(c.messages, msgs...)
	c.mu.Unlock()
}

func (c *ChatService) updateText(id, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.messages {
		if c.messages[i].ID == id {
			c.messages[i].Text = text
			return
		}
	}
}

func (c *ChatService) replace(id string, msg response_models.ChatMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.messages {
		if c.messages[i].ID == id {
			c.messages[i] = msg
			return
		}
	}
	c.messages = append(c.messages, msg)
}

func (c *ChatService) remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.messages {
		if c.messages[i].ID == id {
			c.messages = append(c.messages[:i], c.messages[i+1:]...)
			return
		}
	}
}
