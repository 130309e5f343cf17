package types

// GenerationParams - inference parameters forwarded to the model endpoint
type GenerationParams struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	DoSample    bool    `json:"do_sample"`
}

// ModelConfig - a selectable inference model and its parameters
type ModelConfig struct {
	ID     string           `json:"id"`
	Path   string           `json:"path"`
	Params GenerationParams `json:"params"`
}
