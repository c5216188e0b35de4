package tree

// Config holds configuration for the tree attribute backend.
type Config struct {
	// BaseURL is the root every node path is appended to.
	BaseURL string `mapstructure:"base_url" default:"https://maplestory.io/api/wz/GMS/83"`
	// TimeoutSeconds bounds every request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
}
