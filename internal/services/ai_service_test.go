package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmind/internal/models/request_models"
	"tripmind/internal/models/response_models"
	"tripmind/pkg/utils"
)

type fakeChatClient struct {
	reply       string
	err         error
	gotSystem   string
	gotMessage  string
	gotTemp     float32
	gotMaxToken int
}

func (f *fakeChatClient) Complete(ctx context.Context, systemPrompt, userMessage string, temperature float32, maxTokens int) (string, error) {
	f.gotSystem = systemPrompt
	f.gotMessage = userMessage
	f.gotTemp = temperature
	f.gotMaxToken = maxTokens
	return f.reply, f.err
}

type noopEnrichment struct {
	called bool
}

func (n *noopEnrichment) EnrichPlanImages(ctx context.Context, plan *response_models.TripPlanDocument) {
	n.called = true
}

func chatTurn(content string) request_models.ChatRequest {
	return request_models.ChatRequest{
		Messages: []request_models.ChatMessage{{Role: "user", Content: content}},
	}
}

func TestChatParsesAgentReply(t *testing.T) {
	chat := &fakeChatClient{reply: "```json\n{\"resp\": \"Where are you headed?\", \"ui\": \"destination\"}\n```"}
	service := NewAiService(chat, &noopEnrichment{})

	reply, err := service.Chat(context.Background(), chatTurn("I want to plan a trip"))
	require.NoError(t, err)
	assert.Equal(t, "Where are you headed?", reply.Resp)
	assert.Equal(t, "destination", reply.UI)
	assert.Equal(t, float32(0.2), chat.gotTemp)
	assert.Equal(t, 512, chat.gotMaxToken)
}

func TestChatWrapsPlainTextReply(t *testing.T) {
	chat := &fakeChatClient{reply: "Sure, I can help you plan a trip!"}
	service := NewAiService(chat, &noopEnrichment{})

	reply, err := service.Chat(context.Background(), chatTurn("hello"))
	require.NoError(t, err)
	assert.Equal(t, "Sure, I can help you plan a trip!", reply.Resp)
	assert.Equal(t, "none", reply.UI)
}

func TestChatRejectsEmptyConversation(t *testing.T) {
	service := NewAiService(&fakeChatClient{}, &noopEnrichment{})

	_, err := service.Chat(context.Background(), request_models.ChatRequest{})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestChatPropagatesClientError(t *testing.T) {
	chat := &fakeChatClient{err: errors.New("upstream down")}
	service := NewAiService(chat, &noopEnrichment{})

	_, err := service.Chat(context.Background(), chatTurn("hello"))
	assert.Error(t, err)
}

func TestBuildItineraryParsesAndEnrichesPlan(t *testing.T) {
	chat := &fakeChatClient{reply: `Here is your plan:
{"trip_plan": {"origin": "Hanoi", "destination": "Bangkok", "duration_days": 3, "hotels": [{"hotel_name": "Grand Palace Hotel"}], "itinerary": [{"day": "Day 1", "activities": [{"place_name": "Wat Arun"}]}]}}`}
	enrichment := &noopEnrichment{}
	service := NewAiService(chat, enrichment)

	plan, err := service.BuildItinerary(context.Background(), request_models.FinalPlanInput{
		Source:           "Hanoi",
		Destination:      "Bangkok",
		GroupSize:        "2",
		Budget:           "moderate",
		TripDurationDays: 3,
		Interests:        []string{"temples", "food"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bangkok", plan.TripPlan.Destination)
	require.Len(t, plan.TripPlan.Hotels, 1)
	assert.True(t, enrichment.called)
	assert.Equal(t, float32(0.25), chat.gotTemp)
	assert.Equal(t, 8000, chat.gotMaxToken)
	assert.Contains(t, chat.gotMessage, "Bangkok")
	assert.Contains(t, chat.gotMessage, "temples, food")
}

func TestBuildItineraryRepairsTruncatedPlan(t *testing.T) {
	chat := &fakeChatClient{reply: `{"trip_plan": {"destination": "Bangkok", "budget": "moderate"`}
	service := NewAiService(chat, &noopEnrichment{})

	plan, err := service.BuildItinerary(context.Background(), request_models.FinalPlanInput{Destination: "Bangkok"})
	require.NoError(t, err)
	assert.Equal(t, "Bangkok", plan.TripPlan.Destination)
}

func TestBuildItineraryParseFailure(t *testing.T) {
	chat := &fakeChatClient{reply: "I'm sorry, I cannot plan that trip."}
	service := NewAiService(chat, &noopEnrichment{})

	_, err := service.BuildItinerary(context.Background(), request_models.FinalPlanInput{Destination: "Bangkok"})
	assert.ErrorIs(t, err, utils.ErrPlanParseFailed)
}

func TestBuildItineraryRequiresDestination(t *testing.T) {
	service := NewAiService(&fakeChatClient{}, &noopEnrichment{})

	_, err := service.BuildItinerary(context.Background(), request_models.FinalPlanInput{})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
