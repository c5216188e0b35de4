package config

import (
	"reflect"
	"strings"

	"corpus-builder/core/database"
	"corpus-builder/core/logger"
	"corpus-builder/core/metadata"
	"corpus-builder/core/server"
	"corpus-builder/core/storage"
	"corpus-builder/core/tree"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the read-only corpus HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage the corpus is published to.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the relational backend.
	Database database.Config `mapstructure:"database"`
	// Metadata holds configuration for the metadata REST backend.
	Metadata metadata.Config `mapstructure:"metadata"`
	// Tree holds configuration for the tree attribute backend.
	Tree tree.Config `mapstructure:"tree"`
	// Pipeline holds settings for fetch and cascade runs.
	Pipeline PipelineConfig `mapstructure:"pipeline"`
}

// PipelineConfig holds settings shared by every fetch stage.
type PipelineConfig struct {
	// OutputDir is the root directory of the persisted corpus.
	OutputDir string `mapstructure:"output_dir" default:"data"`
	// DelayMS is the pause after every external backend call.
	DelayMS int `mapstructure:"delay_ms" default:"200"`
	// MaxFoundAt caps the number of map IDs recorded per monster.
	MaxFoundAt int `mapstructure:"max_found_at" default:"10"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. PIPELINE_DELAY_MS -> pipeline.delay_ms)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
