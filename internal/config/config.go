package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrMissingAPIKey = errors.New("mailchimp api key is empty")
	ErrMissingListID = errors.New("mailchimp list id is empty")
)

type Config struct {
	Env        string `env:"ENV" env-default:"local" env-description:"environment, one of local/dev/prod"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer HttpServer
	Mailchimp  Mailchimp
	Limiter    Limiter
	Metrics    Metrics
}

type HttpServer struct {
	Port               string        `env:"HTTP_PORT" env-default:"80"`
	Timeout            time.Duration `env:"HTTP_TIMEOUT" env-default:"15s"`
	IdleTimeout        time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled     bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
	CorsAllowedOrigins []string      `env:"HTTP_CORS_ALLOWED_ORIGINS" env-default:"*" env-description:"comma separated origins, * allows any"`
}

type Mailchimp struct {
	APIKey  string        `env:"MAILCHIMP_API_KEY" env-required:"true" env-description:"Mailchimp API key, <key>-<datacenter>"`
	ListID  string        `env:"MAILCHIMP_LIST_ID" env-required:"true" env-description:"Mailchimp audience (list) id"`
	BaseURL string        `env:"MAILCHIMP_BASE_URL" env-default:"" env-description:"overrides the URL derived from the API key datacenter"`
	Timeout time.Duration `env:"MAILCHIMP_TIMEOUT" env-default:"10s"`
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10" env-description:"requests per second per client ip, 0 disables"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type Metrics struct {
	Enabled bool `env:"METRICS_ENABLED" env-default:"true"`
}

func MustLoad() *Config {
	cfg, err := Load(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

// Load reads the environment and then applies command-line overrides for port, API key and list id.
func Load(args []string, output io.Writer) (*Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("mailchimp-proxy", flag.ContinueOnError)
	fs.SetOutput(output)
	port := fs.String("port", "", "port for server")
	apiKey := fs.String("api-key", "", "Mailchimp API key")
	listID := fs.String("list-id", "", "Mailchimp list ID")
	fs.Usage = cleanenv.FUsage(output, &cfg, nil, fs.Usage)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	overrides := map[string]string{
		"HTTP_PORT":         *port,
		"MAILCHIMP_API_KEY": *apiKey,
		"MAILCHIMP_LIST_ID": *listID,
	}
	for name, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(name, value); err != nil {
			return nil, fmt.Errorf("set %s: %w", name, err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Mailchimp.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Mailchimp.ListID == "" {
		return ErrMissingListID
	}
	return nil
}
