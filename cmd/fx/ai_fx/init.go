package ai_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripforge/pkg/utils"
)

var Module = fx.Provide(
	ProvidePlanClient)

// PlanClientConfig holds configuration for plan generation clients
type PlanClientConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvidePlanClient creates a plan client based on environment variables.
// With AI_PROVIDER=mock (the default) it returns nil and the planner runs on
// the static catalog only.
func ProvidePlanClient() (utils.PlanClientInterface, error) {
	config := getPlanClientConfig()

	if config.Provider == "mock" {
		log.Println("AI provider disabled, planner runs in catalog-only mode")
		return nil, nil
	}

	log.Printf("Initializing %s plan client with model: %s", config.Provider, config.Model)

	switch config.Provider {
	case "openai":
		return utils.NewOpenAIPlanClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiPlanClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'mock', 'openai' or 'gemini'", config.Provider)
	}
}

// getPlanClientConfig reads configuration from environment variables
func getPlanClientConfig() PlanClientConfig {
	provider := strings.ToLower(getEnvWithDefault("AI_PROVIDER", "mock"))

	var apiKey, model string

	switch provider {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return PlanClientConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
