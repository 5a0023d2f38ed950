package config

import (
	"os"
	"path/filepath"
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
	defaultPath = "."

	defaultMaxAddressesPerUser = 10
	defaultMeetupMinRadius     = 250.0
	defaultMeetupMaxRadius     = 5000.0
	defaultPlaceCacheTTL       = 24 * time.Hour
	defaultGeocodingTimeout    = 5 * time.Second
	defaultGeocodingBaseURL    = "https://maps.googleapis.com"
	defaultMaxRequestBodySize  = "1M"
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
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Addresses limits the saved address book
	Addresses *AddressesConfig `json:"addresses" yaml:"addresses"`

	// Meetup tunes the recommended meetup neighborhood
	Meetup *MeetupConfig `json:"meetup" yaml:"meetup"`

	// Geocoding configures the place autocomplete provider
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// Redis is optional; resolved places are cached there when set
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for delivery events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AddressesConfig defines limits for a user's saved addresses
type AddressesConfig struct {
	MaxPerUser int `json:"maxPerUser" yaml:"maxPerUser"`
}

// MeetupConfig bounds the radius of the recommended meetup neighborhood, in meters
type MeetupConfig struct {
	MinRadiusMeters float64 `json:"minRadiusMeters" yaml:"minRadiusMeters"`
	MaxRadiusMeters float64 `json:"maxRadiusMeters" yaml:"maxRadiusMeters"`
}

// GeocodingConfig defines the upstream place provider
type GeocodingConfig struct {
	// Provider type: "google", or empty to disable place search
	Provider string `json:"provider" yaml:"provider"`

	APIKey   string        `json:"apiKey" yaml:"apiKey"`
	BaseURL  string        `json:"baseUrl" yaml:"baseUrl"`
	Language string        `json:"language" yaml:"language"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`

	// CacheTTL is how long a resolved place stays in Redis
	CacheTTL time.Duration `json:"cacheTtl" yaml:"cacheTtl"`

	CircuitBreaker CircuitBreakerConfig `json:"circuitBreaker" yaml:"circuitBreaker"`
}

// CircuitBreakerConfig defines when the geocoding breaker trips
type CircuitBreakerConfig struct {
	FailureRatio float64       `json:"failureRatio" yaml:"failureRatio"`
	MinRequests  uint32        `json:"minRequests" yaml:"minRequests"`
	OpenTimeout  time.Duration `json:"openTimeout" yaml:"openTimeout"`
}

// RedisConfig defines the cache connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
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

// LoadWithEnv loads .yaml files through koanf and applies environment overrides.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	k := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath...)
	if err != nil {
		return nil, err
	}

	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existing := k.Raw()

	// GEOCODING_APIKEY -> geocoding.apiKey
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, existing), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, configPath ...string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills optional sections so the rest of the service never sees nil.
func (c *Config) ApplyDefaults() {
	if c.HTTP.MaxRequestBodySize == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Addresses == nil {
		c.Addresses = &AddressesConfig{}
	}
	if c.Addresses.MaxPerUser <= 0 {
		c.Addresses.MaxPerUser = defaultMaxAddressesPerUser
	}

	if c.Meetup == nil {
		c.Meetup = &MeetupConfig{}
	}
	if c.Meetup.MinRadiusMeters <= 0 {
		c.Meetup.MinRadiusMeters = defaultMeetupMinRadius
	}
	if c.Meetup.MaxRadiusMeters < c.Meetup.MinRadiusMeters {
		c.Meetup.MaxRadiusMeters = max(defaultMeetupMaxRadius, c.Meetup.MinRadiusMeters)
	}

	if c.Geocoding == nil {
		c.Geocoding = &GeocodingConfig{}
	}
	if c.Geocoding.BaseURL == "" {
		c.Geocoding.BaseURL = defaultGeocodingBaseURL
	}
	if c.Geocoding.Timeout <= 0 {
		c.Geocoding.Timeout = defaultGeocodingTimeout
	}
	if c.Geocoding.CacheTTL <= 0 {
		c.Geocoding.CacheTTL = defaultPlaceCacheTTL
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
