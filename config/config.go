package config

import (
	"os"
	"path/filepath"
	"reflect"
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
	"github.com/shopspring/decimal"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultAccessTTL          = 15 * time.Minute
	defaultVitaminsMenu       = "vitamins"
	defaultSimilarLimit       = 2
	defaultCacheTTL           = 5 * time.Minute
	defaultCacheKeyPrefix     = "vitashop"
	defaultQRCodeSize         = 256
	defaultQRCodeLevel        = "M"
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
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access    string        `json:"access" yaml:"access"`
		AccessTTL time.Duration `json:"accessTtl" yaml:"accessTtl"`
	} `json:"secretKey" yaml:"secretKey"`

	// Shop holds pricing and catalog presentation rules
	Shop *ShopConfig `json:"shop" yaml:"shop"`

	// Redis configuration for the catalog cache (optional)
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// QRCode configuration for product QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for cart event publishing (optional)
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`

	// SQL statements slower than this are logged at warn level; zero uses the default
	SlowQuery time.Duration `json:"slowQuery" yaml:"slowQuery"`
}

// ShopConfig defines the cart pricing and product page rules
type ShopConfig struct {
	// Subtotals at or above this amount ship for free
	FreeShippingThreshold decimal.Decimal `json:"freeShippingThreshold" yaml:"freeShippingThreshold"`

	// Flat shipping rate charged below the threshold
	ShippingCost decimal.Decimal `json:"shippingCost" yaml:"shippingCost"`

	// Menu whose products are priced as a single variant on the detail page
	VitaminsMenu string `json:"vitaminsMenu" yaml:"vitaminsMenu"`

	// Maximum number of similar products on the detail page
	SimilarProductLimit int `json:"similarProductLimit" yaml:"similarProductLimit"`
}

// RedisConfig defines the catalog cache connection
type RedisConfig struct {
	// Connection URL, e.g. redis://localhost:6379/0
	URL string `json:"url" yaml:"url"`

	// Lifetime of cached listing and detail payloads
	TTL time.Duration `json:"ttl" yaml:"ttl"`

	// Prefix for every cache key
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

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
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
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
				decimalHookFunc(),
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

	if cfg.Postgres == nil {
		return nil, errors.New("postgres config is required")
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills the settings a minimal config file may omit.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.SecretKey.AccessTTL <= 0 {
		cfg.SecretKey.AccessTTL = defaultAccessTTL
	}

	if cfg.Shop == nil {
		cfg.Shop = &ShopConfig{
			FreeShippingThreshold: decimal.NewFromInt(20),
			ShippingCost:          decimal.NewFromInt(5),
		}
	}
	if cfg.Shop.VitaminsMenu == "" {
		cfg.Shop.VitaminsMenu = defaultVitaminsMenu
	}
	if cfg.Shop.SimilarProductLimit <= 0 {
		cfg.Shop.SimilarProductLimit = defaultSimilarLimit
	}

	if cfg.Redis != nil {
		if cfg.Redis.TTL <= 0 {
			cfg.Redis.TTL = defaultCacheTTL
		}
		if cfg.Redis.KeyPrefix == "" {
			cfg.Redis.KeyPrefix = defaultCacheKeyPrefix
		}
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeLevel
	}
}

// decimalHookFunc decodes YAML numbers and env strings into decimal.Decimal fields.
func decimalHookFunc() mapstructure.DecodeHookFuncType {
	decimalType := reflect.TypeOf(decimal.Decimal{})

	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != decimalType {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			d, err := decimal.NewFromString(strings.TrimSpace(v))
			if err != nil {
				return nil, errors.Wrapf(err, "parse decimal %q", v)
			}

			return d, nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		case float64:
			return decimal.NewFromFloat(v), nil
		}

		return data, nil
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
