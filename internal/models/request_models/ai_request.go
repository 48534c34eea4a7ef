package request_models

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// FinalPlanInput is the collected conversation state handed to the itinerary
// builder once the chat agent reports ui:"final".
type FinalPlanInput struct {
	Source           string   `json:"source"`
	Destination      string   `json:"destination"`
	GroupSize        string   `json:"groupSize"`
	Budget           string   `json:"budget"`
	TripDurationDays int      `json:"tripDurationDays"`
	Interests        []string `json:"interests"`
	SpecialReq       *string  `json:"specialReq"`
}
