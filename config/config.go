package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Port the HTTP server listens on
	Port string `env:"PORT" envDefault:"3000"`

	Listing struct {
		// URL template of the per-UF listing CSV; receives the uppercase code
		URLTemplate string `env:"CAIXA_LIST_URL" envDefault:"https://venda-imoveis.caixa.gov.br/listaweb/Lista_imoveis_%s.csv"`

		// Timeout for one listing download (in seconds)
		FetchTimeout int `env:"CAIXA_FETCH_TIMEOUT" envDefault:"20"`

		// How long a cached region listing stays fresh (in seconds)
		CacheTTL int `env:"CACHE_TTL" envDefault:"600"`

		// Serve the built-in sample listing instead of fetching upstream
		UseSample bool `env:"CAIXA_USE_SAMPLE" envDefault:"false"`
	}

	Advisory struct {
		// Base URL of the OpenAI-compatible completion API
		BaseURL string `env:"ADVISORY_BASE_URL" envDefault:"https://api.openai.com/v1"`

		// API key sent as a bearer token
		APIKey string `env:"OPENAI_API_KEY"`

		// Model asked for the analysis
		Model string `env:"ADVISORY_MODEL" envDefault:"gpt-4o-mini"`

		// Timeout for one completion call (in seconds)
		Timeout int `env:"ADVISORY_TIMEOUT" envDefault:"60"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
