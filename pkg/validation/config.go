package validation

import (
	"context"
	"errors"

	"github.com/dmitrymomot/validates/pkg/config"
	"github.com/dmitrymomot/validates/pkg/environment"
	"github.com/dmitrymomot/validates/pkg/logger"
	"github.com/dmitrymomot/validates/pkg/messages"
)

// Config configures a Runner built by NewRunnerFromConfig.
type Config struct {
	Env                string `env:"APP_ENV" envDefault:"development"`
	ServiceName        string `env:"VALIDATION_SERVICE_NAME" envDefault:"validates"`
	LogLevel           string `env:"VALIDATION_LOG_LEVEL" envDefault:"info"`
	LogFormat          string `env:"VALIDATION_LOG_FORMAT" envDefault:"json"`
	MessagesFile       string `env:"VALIDATION_MESSAGES_FILE"`
	LogMissingMessages bool   `env:"VALIDATION_LOG_MISSING_MESSAGES" envDefault:"false"`
}

// LoadConfig reads Config from the environment (and a .env file if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewRunnerFromConfig builds a runner with a logger and a message catalog
// configured by cfg. Extra logger options are applied last.
func NewRunnerFromConfig(ctx context.Context, cfg Config, opts ...logger.Option) (*Runner, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	log := logger.New(append([]logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithContextExtractors(environment.LoggerExtractor()),
		logger.WithAttr(logger.Component("validation")),
	}, opts...)...)

	catalogOpts := []messages.Option{
		messages.WithLogger(log),
		messages.WithMissingMessagesLogging(cfg.LogMissingMessages),
	}

	catalog := messages.Default(catalogOpts...)
	if cfg.MessagesFile != "" {
		catalog, err = messages.New(ctx, messages.NewFileAdapter(nil, cfg.MessagesFile), catalogOpts...)
		if err != nil {
			return nil, err
		}
	}

	return NewRunner(WithLogger(log), WithCatalog(catalog)), nil
}
