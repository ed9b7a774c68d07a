package factory

import (
	"fmt"

	"moodmate-be/pkg/llm"
	"moodmate-be/pkg/llm/groq"
	"moodmate-be/pkg/llm/ollama"
)

// NewLLMProvider builds a provider from config. An empty Groq key is not an
// error here: the chat responder treats a failing provider as its cue to fall
// back to templated replies.
func NewLLMProvider(providerType, modelName, baseURL, groqAPIKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "groq":
		return groq.NewProvider(groqAPIKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewProvider(baseURL, modelName), nil
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
