package config

import "fmt"

// Storage backend names.
const (
	StorageBackendLocal = "local"
	StorageBackendS3    = "s3"
)

// StorageConfig holds blob storage configuration for uploaded team logos.
type StorageConfig struct {
	// Backend selects the storage implementation (local, s3).
	Backend string
	// LocalRoot is the directory local uploads are written to.
	LocalRoot string
	// LocalBaseURL is the public URL prefix local uploads are served under.
	LocalBaseURL string
	// S3Bucket is the bucket uploads are written to.
	S3Bucket string
	// S3Region is the AWS region of the bucket.
	S3Region string
	// S3AccessKeyID and S3SecretAccessKey are optional static credentials.
	// When empty, the default AWS credential chain is used.
	S3AccessKeyID     string
	S3SecretAccessKey string
	// S3BaseURL overrides the computed public object URL prefix
	// (useful behind a CDN). Empty means the standard bucket URL.
	S3BaseURL string
}

// LoadStorageConfigFromEnv loads storage configuration from environment variables.
func LoadStorageConfigFromEnv() StorageConfig {
	return StorageConfig{
		Backend:           GetEnv("STORAGE_BACKEND", StorageBackendLocal),
		LocalRoot:         GetEnv("STORAGE_LOCAL_ROOT", "uploads"),
		LocalBaseURL:      GetEnv("STORAGE_LOCAL_BASE_URL", "/uploads"),
		S3Bucket:          GetEnv("STORAGE_S3_BUCKET", ""),
		S3Region:          GetEnv("STORAGE_S3_REGION", ""),
		S3AccessKeyID:     GetEnv("STORAGE_S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: GetEnv("STORAGE_S3_SECRET_ACCESS_KEY", ""),
		S3BaseURL:         GetEnv("STORAGE_S3_BASE_URL", ""),
	}
}

// Validate validates storage configuration.
func (c StorageConfig) Validate() error {
	switch c.Backend {
	case StorageBackendLocal:
		if c.LocalRoot == "" {
			return fmt.Errorf("STORAGE_LOCAL_ROOT is required for the local backend")
		}
		if c.LocalBaseURL == "" {
			return fmt.Errorf("STORAGE_LOCAL_BASE_URL is required for the local backend")
		}
	case StorageBackendS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("STORAGE_S3_BUCKET is required for the s3 backend")
		}
		if c.S3Region == "" {
			return fmt.Errorf("STORAGE_S3_REGION is required for the s3 backend")
		}
	default:
		return fmt.Errorf("invalid STORAGE_BACKEND: %s (must be: local, s3)", c.Backend)
	}
	return nil
}
