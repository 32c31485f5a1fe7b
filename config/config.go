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
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
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

	// Worker configuration for the frame decoding worker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// QRCode configuration for symbol rendering
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Logo configuration for the label overlay
	Logo *LogoConfig `json:"logo" yaml:"logo"`

	// Library configuration for the photo library sink
	Library *LibraryConfig `json:"library" yaml:"library"`

	// Scanner configuration for the live capture source
	Scanner *ScannerConfig `json:"scanner" yaml:"scanner"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
	// File enables rotating file output in addition to stdout
	File *LogFileConfig `json:"file" yaml:"file"`
}

// LogFileConfig defines rotation for the optional log file
type LogFileConfig struct {
	Path       string `json:"path" yaml:"path"`
	MaxSizeMB  int    `json:"maxSizeMb" yaml:"maxSizeMb"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays" yaml:"maxAgeDays"`
	Compress   bool   `json:"compress" yaml:"compress"`
}

// WorkerConfig defines the frame worker HTTP endpoint
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	// Pixels per module
	Scale                int    `json:"scale" yaml:"scale"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	// Share of the image width and height cleared for the logo
	LogoRatio float64 `json:"logoRatio" yaml:"logoRatio"`
	// Label rendered into the logo of every generated code
	BrandLabel string `json:"brandLabel" yaml:"brandLabel"`
	// Largest picture, in pixels, accepted for decoding
	MaxPixels int `json:"maxPixels" yaml:"maxPixels"`
}

// LogoConfig defines the label overlay canvas
type LogoConfig struct {
	// Canvas edge in logical units
	CanvasSize int `json:"canvasSize" yaml:"canvasSize"`
	// Output pixels per logical unit
	Scale int `json:"scale" yaml:"scale"`
	// Font size in logical points
	FontSize float64 `json:"fontSize" yaml:"fontSize"`
}

// LibraryConfig defines the photo library sink
type LibraryConfig struct {
	// gocloud.dev bucket URL, e.g. mem://, file:///var/lib/qrstudio, gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	// Key prefix for stored images
	Prefix string `json:"prefix" yaml:"prefix"`
	// One of authorized, limited, denied, restricted, notDetermined
	Authorization string `json:"authorization" yaml:"authorization"`
}

// ScannerConfig defines the live capture source
type ScannerConfig struct {
	// Directory polled for frames; empty uses the in-memory feed
	Directory    string        `json:"directory" yaml:"directory"`
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`
	// Frames buffered by the in-memory feed before new ones are dropped
	FeedBuffer int `json:"feedBuffer" yaml:"feedBuffer"`
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

	configFile, err := findConfigFile(currEnv, configPath...)
	if err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// LIBRARY_BUCKETURL -> library.bucketUrl, matching the YAML casing.
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
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

// New loads config.yaml from the usual locations and fills in defaults.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// Default returns a configuration that needs no file: in-memory library,
// authorized writes, no-op event publishing.
func Default() *Config {
	cfg := &Config{}
	cfg.Env.Env = "develop"
	cfg.Env.ServiceName = "qrstudio"
	cfg.Env.Log.Level = "info"
	cfg.HTTP.Port = 8080
	cfg.ApplyDefaults()

	return cfg
}

// ApplyDefaults fills every unset optional section.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = 8081
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Scale <= 0 {
		cfg.QRCode.Scale = 10
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = "H"
	}
	if cfg.QRCode.LogoRatio <= 0 || cfg.QRCode.LogoRatio >= 1 {
		cfg.QRCode.LogoRatio = 0.2
	}
	if cfg.QRCode.BrandLabel == "" {
		cfg.QRCode.BrandLabel = "TS"
	}
	if cfg.QRCode.MaxPixels <= 0 {
		cfg.QRCode.MaxPixels = 40_000_000
	}

	if cfg.Logo == nil {
		cfg.Logo = &LogoConfig{}
	}
	if cfg.Logo.CanvasSize <= 0 {
		cfg.Logo.CanvasSize = 100
	}
	if cfg.Logo.Scale <= 0 {
		cfg.Logo.Scale = 2
	}
	if cfg.Logo.FontSize <= 0 {
		cfg.Logo.FontSize = 30
	}

	if cfg.Library == nil {
		cfg.Library = &LibraryConfig{}
	}
	if cfg.Library.BucketURL == "" {
		cfg.Library.BucketURL = "mem://"
	}
	if cfg.Library.Prefix == "" {
		cfg.Library.Prefix = "qrcodes/"
	}
	if cfg.Library.Authorization == "" {
		cfg.Library.Authorization = "authorized"
	}

	if cfg.Scanner == nil {
		cfg.Scanner = &ScannerConfig{}
	}
	if cfg.Scanner.PollInterval <= 0 {
		cfg.Scanner.PollInterval = 500 * time.Millisecond
	}
	if cfg.Scanner.FeedBuffer <= 0 {
		cfg.Scanner.FeedBuffer = 8
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
