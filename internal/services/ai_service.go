package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"tripmind/internal/models/request_models"
	"tripmind/internal/models/response_models"
	"tripmind/pkg/utils"
)

const agentSystemPrompt = `You are TripMind, a friendly trip-planning assistant. Gather the details needed to build a trip plan one at a time: source city, destination, group size, budget, trip duration in days, interests and any special requirements. Ask exactly one question per turn.

Always answer with a single JSON object and nothing else:
{"resp": "<your message to the traveler>", "ui": "<one of: none, source, destination, groupSize, budget, tripDuration, interests, specialReq, final>"}

Set "ui" to the detail you are currently asking for so the client can render the matching picker, and to "final" once every detail has been collected.`

const itinerarySystemPrompt = `You are TripMind, an expert travel planner. Generate a complete trip plan as a single JSON object and nothing else, using exactly this shape:
{"trip_plan": {"origin": "", "destination": "", "duration_days": 0, "budget": "", "group_size": "", "interests": [], "special_requirements": "", "hotels": [{"hotel_name": "", "hotel_address": "", "price_per_night": "", "hotel_image_url": "", "geo_coordinates": {"latitude": 0, "longitude": 0}, "rating": "", "description": ""}], "itinerary": [{"day": "", "day_plan": "", "best_time_to_visit_day": "", "activities": [{"place_name": "", "place_details": "", "place_image_url": "", "geo_coordinates": {"latitude": 0, "longitude": 0}, "place_address": "", "ticket_pricing": "", "time_travel_each_location": "", "best_time_to_visit": ""}]}]}}

Recommend 3 to 5 real hotels matching the budget and fill every itinerary day with real places. Leave image URL fields empty unless you are certain of a real photo URL.`

const (
	chatTemperature      = 0.2
	chatMaxTokens        = 512
	itineraryTemperature = 0.25
	itineraryMaxTokens   = 8000
)

type AiServiceInterface interface {
	Chat(ctx context.Context, req request_models.ChatRequest) (*response_models.AgentReply, error)
	BuildItinerary(ctx context.Context, input request_models.FinalPlanInput) (*response_models.TripPlanDocument, error)
}

type AiService struct {
	chat       utils.ChatClientInterface
	enrichment EnrichmentServiceInterface
}

func NewAiService(chat utils.ChatClientInterface, enrichment EnrichmentServiceInterface) AiServiceInterface {
	return &AiService{chat: chat, enrichment: enrichment}
}

// Chat runs one turn of the intake conversation. The model is asked for a
// JSON reply; if it answers in prose anyway the raw text is wrapped in an
// AgentReply with ui "none" rather than failing the turn.
func (s *AiService) Chat(ctx context.Context, req request_models.ChatRequest) (*response_models.AgentReply, error) {
	if len(req.Messages) == 0 {
		return nil, utils.ErrInvalidInput
	}

	raw, err := s.chat.Complete(ctx, agentSystemPrompt, renderConversation(req.Messages), chatTemperature, chatMaxTokens)
	if err != nil {
		return nil, err
	}

	extracted := utils.ExtractBalancedJSON(raw)
	var reply response_models.AgentReply
	if err := json.Unmarshal([]byte(extracted), &reply); err != nil || reply.Resp == "" {
		log.Printf("agent reply was not valid JSON, passing through as plain text")
		return &response_models.AgentReply{Resp: strings.TrimSpace(raw), UI: "none"}, nil
	}
	if reply.UI == "" {
		reply.UI = "none"
	}
	return &reply, nil
}

// BuildItinerary asks the model for a full plan, repairs and parses the JSON
// and then enriches every hotel and activity with a verified image URL.
// A reply that cannot be parsed into a plan is the one fatal case.
func (s *AiService) BuildItinerary(ctx context.Context, input request_models.FinalPlanInput) (*response_models.TripPlanDocument, error) {
	if input.Destination == "" {
		return nil, utils.ErrInvalidInput
	}

	raw, err := s.chat.Complete(ctx, itinerarySystemPrompt, renderPlanRequest(input), itineraryTemperature, itineraryMaxTokens)
	if err != nil {
		return nil, err
	}

	extracted := utils.ExtractBalancedJSON(raw)
	var plan response_models.TripPlanDocument
	if err := json.Unmarshal([]byte(extracted), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPlanParseFailed, err)
	}
	if plan.TripPlan.Destination == "" && len(plan.TripPlan.Hotels) == 0 && len(plan.TripPlan.Itinerary) == 0 {
		return nil, fmt.Errorf("%w: model returned an empty plan", utils.ErrPlanParseFailed)
	}

	s.enrichment.EnrichPlanImages(ctx, &plan)
	return &plan, nil
}

func renderConversation(messages []request_models.ChatMessage) string {
	var sb strings.Builder
	for _, msg := range messages {
		role := msg.Role
		if role != "assistant" {
			role = "user"
		}
		sb.WriteString(role)
		sb.WriteString(": ")
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderPlanRequest(input request_models.FinalPlanInput) string {
	specialReq := "none"
	if input.SpecialReq != nil && *input.SpecialReq != "" {
		specialReq = *input.SpecialReq
	}
	return fmt.Sprintf(
		"Plan a trip from %s to %s for %s traveler(s) with a %s budget, lasting %d day(s). Interests: %s. Special requirements: %s.",
		input.Source,
		input.Destination,
		input.GroupSize,
		input.Budget,
		input.TripDurationDays,
		strings.Join(input.Interests, ", "),
		specialReq,
	)
}
