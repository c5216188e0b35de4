package storage

// Config holds the S3/MinIO settings used by publish and the structure checks.
type Config struct {
	// Endpoint is the host (and optional scheme) of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL switches the client to HTTPS.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket receives the corpus files.
	Bucket string `mapstructure:"bucket" default:"corpus"`
	// Prefix is prepended to every object key, e.g. "gms/v83".
	Prefix string `mapstructure:"prefix" default:""`
	// Region is used when the bucket has to be created.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, TLS handshakes and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
