package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
)

const defaultMaxUploadBytes = 10 << 20

// Config holds application configuration.
type Config struct {
	Port             string
	Env              string
	CORSAllowOrigin  []string
	ObjectStoreType  string
	LocalStoreDir    string
	AWSRegion        string
	S3Bucket         string
	S3Prefix         string
	SSEKMSKeyID      string
	ReferenceDocPath string
	MaxUploadBytes   int64
	RateLimitRPS     float64
	RateLimitBurst   int
	LogLevel         string
	LogFormat        string
}

// Load reads configuration from an optional config.yaml in the working
// directory and from environment variables, which take precedence.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, eris.Wrap(err, "config: read file")
		}
	}

	cfg := Config{
		Port:             v.GetString("port"),
		Env:              normalizeEnv(v.GetString("env")),
		CORSAllowOrigin:  splitAndTrim(v.GetString("cors_allow_origins")),
		ObjectStoreType:  normalizeStoreType(v.GetString("object_store")),
		LocalStoreDir:    v.GetString("local_store_dir"),
		AWSRegion:        v.GetString("aws_region"),
		S3Bucket:         v.GetString("s3_bucket"),
		S3Prefix:         v.GetString("s3_prefix"),
		SSEKMSKeyID:      v.GetString("sse_kms_key_id"),
		ReferenceDocPath: v.GetString("reference_doc_path"),
		MaxUploadBytes:   v.GetInt64("max_upload_bytes"),
		RateLimitRPS:     v.GetFloat64("rate_limit_rps"),
		RateLimitBurst:   v.GetInt("rate_limit_burst"),
		LogLevel:         strings.ToLower(v.GetString("log_level")),
		LogFormat:        strings.ToLower(v.GetString("log_format")),
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}
	if cfg.ObjectStoreType == "s3" && cfg.S3Bucket == "" {
		return Config{}, eris.New("config: S3_BUCKET is required when OBJECT_STORE=s3")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("env", "dev")
	v.SetDefault("cors_allow_origins", "http://localhost:5173")
	v.SetDefault("object_store", "local")
	v.SetDefault("local_store_dir", "./data")
	v.SetDefault("aws_region", "")
	v.SetDefault("s3_bucket", "")
	v.SetDefault("s3_prefix", "")
	v.SetDefault("sse_kms_key_id", "")
	v.SetDefault("reference_doc_path", "")
	v.SetDefault("max_upload_bytes", defaultMaxUploadBytes)
	v.SetDefault("rate_limit_rps", 1.0)
	v.SetDefault("rate_limit_burst", 5)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
