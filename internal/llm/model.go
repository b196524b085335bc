package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/bedrock"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/MalleGowthami/IntelliSQL/internal/config"
)

// maxAttempts bounds retries of a single generation call. Two backoff
// sleeps (2s, 4s) happen between the three attempts.
const maxAttempts = 3

// Model wraps a langchaingo LLM for text generation with bounded retry on
// transient transport failures.
type Model struct {
	llm       llms.Model
	modelName string
	logger    *slog.Logger

	// sleep is swapped out in tests to observe backoff without waiting.
	sleep func(time.Duration)
}

// New creates an LLM model based on configuration. Credentials are
// validated here, at first use.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Model, error) {
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := NewHTTPClient(cfg.PreferIPv4)

	var model llms.Model
	var err error

	switch cfg.LLMProvider {
	case config.ProviderGoogleAI:
		if cfg.GoogleAPIKey == "" || cfg.GoogleAPIKey == config.APIKeyPlaceholder {
			return nil, fmt.Errorf("%w: set a valid GOOGLE_API_KEY in your environment or .env file "+
				"(get one at https://makersuite.google.com/app/apikey)", ErrConfiguration)
		}
		model, err = googleai.New(ctx,
			googleai.WithAPIKey(cfg.GoogleAPIKey),
			googleai.WithDefaultModel(cfg.LLMModel),
			googleai.WithHTTPClient(httpClient),
		)
		if err != nil {
			return nil, fmt.Errorf("create googleai model: %w", err)
		}

	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY required", ErrConfiguration)
		}
		model, err = openai.New(
			openai.WithToken(cfg.OpenAIAPIKey),
			openai.WithModel(cfg.LLMModel),
			openai.WithHTTPClient(httpClient),
		)
		if err != nil {
			return nil, fmt.Errorf("create openai model: %w", err)
		}

	case config.ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY required", ErrConfiguration)
		}
		model, err = anthropic.New(
			anthropic.WithToken(cfg.AnthropicAPIKey),
			anthropic.WithModel(cfg.LLMModel),
			anthropic.WithHTTPClient(httpClient),
		)
		if err != nil {
			return nil, fmt.Errorf("create anthropic model: %w", err)
		}

	case config.ProviderOllama:
		model, err = ollama.New(
			ollama.WithModel(cfg.LLMModel),
			ollama.WithServerURL(cfg.OllamaHost),
			ollama.WithHTTPClient(httpClient),
		)
		if err != nil {
			return nil, fmt.Errorf("create ollama model: %w", err)
		}

	case config.ProviderBedrock:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: load aws config: %v", ErrConfiguration, err)
		}
		client := bedrockruntime.NewFromConfig(awsCfg)
		model, err = bedrock.New(
			bedrock.WithClient(client),
			bedrock.WithModel(cfg.LLMModel),
		)
		if err != nil {
			return nil, fmt.Errorf("create bedrock model: %w", err)
		}

	default:
		return nil, fmt.Errorf("%w: unsupported LLM provider: %s", ErrConfiguration, cfg.LLMProvider)
	}

	return &Model{
		llm:       model,
		modelName: cfg.LLMModel,
		logger:    logger,
		sleep:     time.Sleep,
	}, nil
}

// Model returns the LLM model name.
func (m *Model) Model() string {
	return m.modelName
}

// Generate produces text for a prompt. Transient transport failures are
// retried up to maxAttempts with exponential backoff; every other failure,
// and retry exhaustion, propagates to the caller.
func (m *Model) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		response, err := llms.GenerateFromSinglePrompt(ctx, m.llm, prompt)
		if err == nil {
			return response, nil
		}
		lastErr = err

		if attempt == maxAttempts-1 || !isTransient(err) {
			return "", fmt.Errorf("generate: %w", err)
		}

		delay := backoffDelay(attempt)
		m.logger.Warn("transient llm failure, retrying",
			"attempt", attempt+1, "max_attempts", maxAttempts, "delay", delay, "error", err)
		m.sleep(delay)
	}

	return "", fmt.Errorf("generate: %w", lastErr)
}

// backoffDelay returns 2s after the first failed attempt, 4s after the
// second.
func backoffDelay(attempt int) time.Duration {
	return time.Duration(1<<(attempt+1)) * time.Second
}
