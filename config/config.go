// Package config loads the service configuration from yaml files with an
// environment variable overlay.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultSentinelTokenURL   = "https://services.sentinel-hub.com/oauth/token"
	defaultSentinelProcessURL = "https://services.sentinel-hub.com/api/v1/process"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	// Sentinel configuration for the imagery provider integration
	Sentinel *SentinelConfig `json:"sentinel" yaml:"sentinel"`

	// Storage configuration for the image blob store
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// PubSub configuration for the fetch job queue
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SentinelConfig defines the Sentinel Hub integration settings.
type SentinelConfig struct {
	// OAuth2 client-credentials endpoint for token acquisition
	TokenURL string `json:"tokenUrl" yaml:"tokenUrl"`

	// Process API endpoint for imagery requests
	ProcessURL string `json:"processUrl" yaml:"processUrl"`

	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`

	// Per-call timeout for token and imagery requests
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Acquisition window length: images from the last N days are considered
	LookbackDays int `json:"lookbackDays" yaml:"lookbackDays"`

	// Cloud coverage ceiling in percent
	MaxCloudCoverage int `json:"maxCloudCoverage" yaml:"maxCloudCoverage"`

	// Output raster dimensions in pixels
	OutputWidth  int `json:"outputWidth" yaml:"outputWidth"`
	OutputHeight int `json:"outputHeight" yaml:"outputHeight"`
}

// StorageConfig defines the blob storage settings.
type StorageConfig struct {
	// BucketURL is a gocloud.dev bucket URL, e.g. "s3://bucket?region=us-east-1",
	// "gs://bucket" or "file:///var/cropsat/images" for development.
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// KeyPrefix namespaces all uploaded image keys
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// PubSubConfig defines the fetch job queue settings.
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local worker push endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// MaxAttempts bounds delivery attempts per job. For the google
	// provider this mirrors the subscription's dead-letter policy; the
	// local provider enforces it directly.
	MaxAttempts int `json:"maxAttempts" yaml:"maxAttempts"`

	// RetryDelay is the base delay of the exponential backoff between attempts
	RetryDelay time.Duration `json:"retryDelay" yaml:"retryDelay"`
}

// Queue defaults match the source deployment: 5 attempts, 5s base delay.
const (
	DefaultMaxAttempts = 5
	DefaultRetryDelay  = 5 * time.Second
)

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: SENTINEL_CLIENTID -> sentinel.clientId (not sentinel.clientid)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applySentinelDefaults(cfg)
	applyPubSubDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func applySentinelDefaults(cfg *Config) {
	if cfg.Sentinel == nil {
		return
	}

	if cfg.Sentinel.TokenURL == "" {
		cfg.Sentinel.TokenURL = defaultSentinelTokenURL
	}
	if cfg.Sentinel.ProcessURL == "" {
		cfg.Sentinel.ProcessURL = defaultSentinelProcessURL
	}
	if cfg.Sentinel.Timeout <= 0 {
		cfg.Sentinel.Timeout = 30 * time.Second
	}
	if cfg.Sentinel.LookbackDays <= 0 {
		cfg.Sentinel.LookbackDays = 30
	}
	if cfg.Sentinel.MaxCloudCoverage <= 0 {
		cfg.Sentinel.MaxCloudCoverage = 20
	}
	if cfg.Sentinel.OutputWidth <= 0 {
		cfg.Sentinel.OutputWidth = 512
	}
	if cfg.Sentinel.OutputHeight <= 0 {
		cfg.Sentinel.OutputHeight = 512
	}
}

func applyPubSubDefaults(cfg *Config) {
	if cfg.PubSub == nil {
		return
	}

	if cfg.PubSub.MaxAttempts <= 0 {
		cfg.PubSub.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.PubSub.RetryDelay <= 0 {
		cfg.PubSub.RetryDelay = DefaultRetryDelay
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
