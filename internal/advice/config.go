package advice

// Config holds plan generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for plan generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   768,
		Temperature: 0.4,
	}
}
