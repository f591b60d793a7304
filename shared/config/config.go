package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"reflect"

	"github.com/go-playground/validator/v10"
	internal_errors "github.com/itchan-dev/signflow/shared/errors"
	"gopkg.in/yaml.v2"
)

const (
	defaultCarboneApiURL  = "https://api.carbone.io"
	defaultSubnotoApiURL  = "https://enclave.subnoto.com"
	defaultEnvelopeTitle  = "Employment Contract"
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
	publicConfigFilename  = "public.yaml"
	privateConfigFilename = "private.yaml"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Carbone       Carbone `yaml:"carbone"`
	Subnoto       Subnoto `yaml:"subnoto"`
	EnvelopeTitle string  `yaml:"envelope_title"`
	Log           Log     `yaml:"log"`
	Metrics       Metrics `yaml:"metrics"`
}

type Carbone struct {
	ApiURL     string `yaml:"api_url"`
	TemplateId string `yaml:"template_id"`
}

type Subnoto struct {
	ApiBaseURL    string `yaml:"api_base_url"`
	WorkspaceUUID string `yaml:"workspace_uuid"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text|json
}

type Metrics struct {
	PushgatewayURL string `yaml:"pushgateway_url"` // empty disables the push
}

type Private struct {
	CarboneApiKey    string `yaml:"carbone_api_key"`
	SubnotoAccessKey string `yaml:"subnoto_access_key"`
	SubnotoSecretKey string `yaml:"subnoto_secret_key"`
}

func (c *Config) CarboneApiKey() string {
	return c.private.CarboneApiKey
}

func (c *Config) SubnotoAccessKey() string {
	return c.private.SubnotoAccessKey
}

func (c *Config) SubnotoSecretKey() string {
	return c.private.SubnotoSecretKey
}

// New builds a config from explicit values, mostly for tests.
func New(public Public, private Private) *Config {
	cfg := &Config{Public: public, private: private}
	cfg.applyDefaults()
	return cfg
}

// Load reads public.yaml and private.yaml from configFolder when they exist,
// then applies environment overrides and defaults. Missing files are not an error.
func Load(configFolder string) (*Config, error) {
	cfg := &Config{}
	if configFolder != "" {
		if err := loadPath(path.Join(configFolder, publicConfigFilename), &cfg.Public); err != nil {
			return nil, err
		}
		if err := loadPath(path.Join(configFolder, privateConfigFilename), &cfg.private); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv(os.Getenv)
	cfg.applyDefaults()
	return cfg, nil
}

func loadPath(configPath string, output interface{}) error {
	configFile, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("can't read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		return fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	override := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	override(&c.private.CarboneApiKey, "CARBONE_API_KEY")
	override(&c.Public.Carbone.ApiURL, "CARBONE_API_URL")
	override(&c.Public.Carbone.TemplateId, "CARBONE_TEMPLATE_ID")
	override(&c.Public.Subnoto.ApiBaseURL, "SUBNOTO_API_BASE_URL")
	override(&c.private.SubnotoAccessKey, "SUBNOTO_ACCESS_KEY")
	override(&c.private.SubnotoSecretKey, "SUBNOTO_SECRET_KEY")
	override(&c.Public.Subnoto.WorkspaceUUID, "SUBNOTO_WORKSPACE_UUID")
	override(&c.Public.EnvelopeTitle, "SIGNFLOW_ENVELOPE_TITLE")
	override(&c.Public.Log.Level, "LOG_LEVEL")
	override(&c.Public.Log.Format, "LOG_FORMAT")
	override(&c.Public.Metrics.PushgatewayURL, "PUSHGATEWAY_URL")
}

func (c *Config) applyDefaults() {
	setDefault := func(dst *string, value string) {
		if *dst == "" {
			*dst = value
		}
	}
	setDefault(&c.Public.Carbone.ApiURL, defaultCarboneApiURL)
	setDefault(&c.Public.Subnoto.ApiBaseURL, defaultSubnotoApiURL)
	setDefault(&c.Public.EnvelopeTitle, defaultEnvelopeTitle)
	setDefault(&c.Public.Log.Level, defaultLogLevel)
	setDefault(&c.Public.Log.Format, defaultLogFormat)
}

// requiredValues lists everything that must be present before the first
// network call. Fields are reported by their env name.
type requiredValues struct {
	CarboneApiKey    string `env:"CARBONE_API_KEY" validate:"required"`
	CarboneApiURL    string `env:"CARBONE_API_URL" validate:"required,url"`
	CarboneTemplate  string `env:"CARBONE_TEMPLATE_ID" validate:"required"`
	SubnotoApiURL    string `env:"SUBNOTO_API_BASE_URL" validate:"required,url"`
	SubnotoAccessKey string `env:"SUBNOTO_ACCESS_KEY" validate:"required"`
	SubnotoSecretKey string `env:"SUBNOTO_SECRET_KEY" validate:"required"`
	WorkspaceUUID    string `env:"SUBNOTO_WORKSPACE_UUID" validate:"required,uuid"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// Validate checks that every required value is set. The first problem is
// reported, naming the env variable that supplies it.
func (c *Config) Validate() error {
	values := requiredValues{
		CarboneApiKey:    c.private.CarboneApiKey,
		CarboneApiURL:    c.Public.Carbone.ApiURL,
		CarboneTemplate:  c.Public.Carbone.TemplateId,
		SubnotoApiURL:    c.Public.Subnoto.ApiBaseURL,
		SubnotoAccessKey: c.private.SubnotoAccessKey,
		SubnotoSecretKey: c.private.SubnotoSecretKey,
		WorkspaceUUID:    c.Public.Subnoto.WorkspaceUUID,
	}

	err := validate.Struct(values)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}
	fe := fieldErrors[0]
	if fe.Tag() == "required" {
		return fmt.Errorf("%w: %s is not set", internal_errors.ErrConfigurationMissing, fe.Field())
	}
	return fmt.Errorf("%w: %s is not a valid %s", internal_errors.ErrConfigurationInvalid, fe.Field(), fe.Tag())
}
