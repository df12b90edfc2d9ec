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
	defaultHistoryPruneSpec   = "@every 10m"
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

	// SecretKey verifies access tokens issued by the auth provider
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Engagement tunes the scoring and arbitration engine
	Engagement *EngagementConfig `json:"engagement" yaml:"engagement"`

	// History configures the shown-notification history store
	History *HistoryConfig `json:"history" yaml:"history"`

	// Sweep configures periodic background jobs
	Sweep *SweepConfig `json:"sweep" yaml:"sweep"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for selected-notification publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// EngagementConfig holds every threshold and window of the engagement engine
type EngagementConfig struct {
	// Number of most recent interactions read per user
	InteractionWindow int `json:"interactionWindow" yaml:"interactionWindow"`

	// Price ceilings for the "low" and "mid" price-affinity tiers
	LowPriceThreshold float64 `json:"lowPriceThreshold" yaml:"lowPriceThreshold"`
	MidPriceThreshold float64 `json:"midPriceThreshold" yaml:"midPriceThreshold"`

	// Minimum score for a personalized notification
	PersonalizedMinScore float64 `json:"personalizedMinScore" yaml:"personalizedMinScore"`

	// Trending score an event must exceed to produce a trending notification
	TrendingThreshold float64 `json:"trendingThreshold" yaml:"trendingThreshold"`

	// How long a shown notification stays ineligible
	HistoryTTL time.Duration `json:"historyTTL" yaml:"historyTTL"`

	// Radius in meters within which an event counts as near
	ProximityRadiusMeters float64 `json:"proximityRadiusMeters" yaml:"proximityRadiusMeters"`

	// Minimum interval between two processed position updates of a session
	ProximityInterval time.Duration `json:"proximityInterval" yaml:"proximityInterval"`

	// Delay between a view and its re-engagement reminder
	ReminderDelay time.Duration `json:"reminderDelay" yaml:"reminderDelay"`

	// How long proximity and reminder candidates wait for arbitration
	InboxTTL time.Duration `json:"inboxTTL" yaml:"inboxTTL"`

	// Circuit breaker applied to each external data source
	BreakerFailureThreshold uint32        `json:"breakerFailureThreshold" yaml:"breakerFailureThreshold"`
	BreakerOpenTimeout      time.Duration `json:"breakerOpenTimeout" yaml:"breakerOpenTimeout"`
}

// HistoryConfig defines where shown-notification history lives
type HistoryConfig struct {
	// Store type: "memory" or "badger"
	Store string `json:"store" yaml:"store"`

	// Directory of the BadgerDB files (badger store only)
	Path string `json:"path" yaml:"path"`
}

// SweepConfig defines cron specs for background jobs
type SweepConfig struct {
	// Cron spec for pruning expired shown-notification history
	HistoryPrune string `json:"historyPrune" yaml:"historyPrune"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Topic prefix; each user receives pushes on <prefix><userID>
	TopicPrefix string `json:"topicPrefix" yaml:"topicPrefix"`
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

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.Engagement = withEngagementDefaults(cfg.Engagement)

	if cfg.History == nil {
		cfg.History = &HistoryConfig{Store: "memory"}
	}

	if cfg.Sweep == nil || strings.TrimSpace(cfg.Sweep.HistoryPrune) == "" {
		cfg.Sweep = &SweepConfig{HistoryPrune: defaultHistoryPruneSpec}
	}

	return cfg, nil
}

// NewEngagementConfig exposes the engagement section to fx consumers
func NewEngagementConfig(cfg *Config) *EngagementConfig {
	return withEngagementDefaults(cfg.Engagement)
}

// DefaultEngagementConfig returns the engine defaults
func DefaultEngagementConfig() *EngagementConfig {
	return &EngagementConfig{
		InteractionWindow:       200,
		LowPriceThreshold:       20,
		MidPriceThreshold:       50,
		PersonalizedMinScore:    40,
		TrendingThreshold:       50,
		HistoryTTL:              24 * time.Hour,
		ProximityRadiusMeters:   500,
		ProximityInterval:       time.Minute,
		ReminderDelay:           30 * time.Minute,
		InboxTTL:                2 * time.Hour,
		BreakerFailureThreshold: 5,
		BreakerOpenTimeout:      30 * time.Second,
	}
}

// withEngagementDefaults fills every unset field of cfg with its default
func withEngagementDefaults(cfg *EngagementConfig) *EngagementConfig {
	defaults := DefaultEngagementConfig()
	if cfg == nil {
		return defaults
	}

	merged := *cfg
	if merged.InteractionWindow <= 0 {
		merged.InteractionWindow = defaults.InteractionWindow
	}
	if merged.LowPriceThreshold <= 0 {
		merged.LowPriceThreshold = defaults.LowPriceThreshold
	}
	if merged.MidPriceThreshold <= merged.LowPriceThreshold {
		merged.MidPriceThreshold = max(defaults.MidPriceThreshold, merged.LowPriceThreshold)
	}
	if merged.PersonalizedMinScore <= 0 {
		merged.PersonalizedMinScore = defaults.PersonalizedMinScore
	}
	if merged.TrendingThreshold <= 0 {
		merged.TrendingThreshold = defaults.TrendingThreshold
	}
	if merged.HistoryTTL <= 0 {
		merged.HistoryTTL = defaults.HistoryTTL
	}
	if merged.ProximityRadiusMeters <= 0 {
		merged.ProximityRadiusMeters = defaults.ProximityRadiusMeters
	}
	if merged.ProximityInterval <= 0 {
		merged.ProximityInterval = defaults.ProximityInterval
	}
	if merged.ReminderDelay <= 0 {
		merged.ReminderDelay = defaults.ReminderDelay
	}
	if merged.InboxTTL <= 0 {
		merged.InboxTTL = defaults.InboxTTL
	}
	if merged.BreakerFailureThreshold == 0 {
		merged.BreakerFailureThreshold = defaults.BreakerFailureThreshold
	}
	if merged.BreakerOpenTimeout <= 0 {
		merged.BreakerOpenTimeout = defaults.BreakerOpenTimeout
	}

	return &merged
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
