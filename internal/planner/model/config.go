package model

// ================ Config ================
type ConversationConfig struct {
	TTL    string `envconfig:"CONVERSATION_TTL" default:"24h"`
	Intent struct {
		MaxTurns int `envconfig:"CONVERSATION_INTENT_MAX_TURNS" default:"6"`
	}
	Tools struct {
		MaxCalls int `envconfig:"CONVERSATION_TOOL_MAX_CALLS" default:"10"`
	}
}

// IntentModelConfig configures the model behind structured intent
// extraction. Low temperature keeps the JSON output stable.
type IntentModelConfig struct {
	Model       string  `envconfig:"INTENT_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"INTENT_MAX_TOKENS" default:"2000"`
	Temperature float32 `envconfig:"INTENT_TEMPERATURE" default:"0.1"`
}

// SuggestionModelConfig configures the conversational model used when
// matching produced no recommendations and ideas must be generated.
type SuggestionModelConfig struct {
	Model       string  `envconfig:"SUGGESTION_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"SUGGESTION_MAX_TOKENS" default:"2000"`
	Temperature float32 `envconfig:"SUGGESTION_TEMPERATURE" default:"0.6"`
}

// SuggestionPromptConfig carries the marketplace identity baked into the
// suggestion system prompt.
type SuggestionPromptConfig struct {
	PlatformName string `envconfig:"PROMPT_PLATFORM_NAME" default:"Strathwell"`
	Region       string `envconfig:"PROMPT_REGION" default:"United States"`
}

// PlannerConfig tunes the deterministic matching pipeline.
type PlannerConfig struct {
	VenueLimit          int `envconfig:"PLANNER_VENUE_LIMIT" default:"8"`
	ServicesPerCategory int `envconfig:"PLANNER_SERVICES_PER_CATEGORY" default:"2"`
	RelatedLimit        int `envconfig:"PLANNER_RELATED_LIMIT" default:"6"`
}
