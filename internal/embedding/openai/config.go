package openai

// Config holds configuration for the OpenAI embedding provider.
type Config struct {
	APIKey     string `env:"OPENAI_API_KEY"`
	Model      string `env:"EMBEDDING_MODEL"       envDefault:"text-embedding-3-small"`
	Timeout    int    `env:"EMBEDDING_TIMEOUT"     envDefault:"60"`
	MaxRetries int    `env:"EMBEDDING_MAX_RETRIES" envDefault:"2"`
}
