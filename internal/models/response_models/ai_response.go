package response_models

// AgentReply is what the chat agent returns each turn. UI is one of
// "none", "destination", "groupSize", "budget", "tripDuration",
// "interests", "specialReq" or "final".
type AgentReply struct {
	Resp string `json:"resp"`
	UI   string `json:"ui"`
}
