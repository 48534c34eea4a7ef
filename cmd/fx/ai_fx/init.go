package ai_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripmind/internal/api/controllers"
	"tripmind/internal/services"
	"tripmind/pkg/utils"
)

var Module = fx.Provide(
	ProvideChatClient,
	provideWikidataClient,
	provideWikipediaClient,
	provideEnrichmentService,
	provideAiService,
	provideAiController)

// ChatConfig holds configuration for the LLM chat client.
type ChatConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideChatClient creates a chat client based on environment variables.
// Groq is the default provider; Gemini is available as an alternative.
func ProvideChatClient() (utils.ChatClientInterface, error) {
	config := getChatConfig()

	log.Printf("Initializing %s chat client with model: %s", config.Provider, config.Model)
	return utils.NewChatClient(config.Provider, config.APIKey, config.Model)
}

func provideWikidataClient() services.WikidataClientInterface {
	return services.NewWikidataClient()
}

func provideWikipediaClient() services.WikipediaClientInterface {
	return services.NewWikipediaClient()
}

func provideEnrichmentService(
	wikidata services.WikidataClientInterface,
	wikipedia services.WikipediaClientInterface,
) services.EnrichmentServiceInterface {
	return services.NewEnrichmentService(wikidata, wikipedia)
}

func provideAiService(
	chat utils.ChatClientInterface,
	enrichment services.EnrichmentServiceInterface,
) services.AiServiceInterface {
	return services.NewAiService(chat, enrichment)
}

func provideAiController(aiService services.AiServiceInterface) *controllers.AiController {
	return controllers.NewAiController(aiService)
}

func getChatConfig() ChatConfig {
	provider := getEnvWithDefault("CHAT_PROVIDER", "groq")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "groq":
		apiKey = os.Getenv("GROQ_API_KEY")
		model = getEnvWithDefault("GROQ_MODEL", "llama-3.3-70b-versatile")
		if apiKey == "" {
			log.Fatal("GROQ_API_KEY is required when using Groq provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return ChatConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
