package metadata

// Config holds configuration for the metadata REST backend.
type Config struct {
	// BaseURL is the API root, without region and version.
	BaseURL string `mapstructure:"base_url" default:"https://maplestory.io/api"`
	// Region is the game region segment of every URL.
	Region string `mapstructure:"region" default:"GMS"`
	// Version is the game data version segment of every URL.
	Version string `mapstructure:"version" default:"83"`
	// TimeoutSeconds bounds every request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
