// Package llm holds model configuration and the client abstraction used by
// profile extraction and narrative generation.
package llm

// ModelTier selects how much model capability a call needs. Callers pick a
// tier rather than a model name so the mapping can change in one place.
type ModelTier string

const (
	// TierLite covers cheap calls: classification, short extraction
	TierLite ModelTier = "lite"
	// TierStandard covers structured output like profile extraction
	TierStandard ModelTier = "standard"
	// TierAdvanced covers narrative and roadmap generation
	TierAdvanced ModelTier = "advanced"
)

// Provider identifies an LLM backend.
type Provider string

const (
	// ProviderGemini is the Google Gemini provider, the only one implemented
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is reserved for a future OpenAI backend
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic is reserved for a future Anthropic backend
	ProviderAnthropic Provider = "anthropic"
)

// Config maps tiers to concrete model names for one provider.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default configuration, currently Gemini.
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the stock Gemini tier mapping.
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a tier, falling back to standard then
// lite when the tier has no mapping. Returns "" when nothing is configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one tier remapped. The receiver
// is not modified.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string),
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
