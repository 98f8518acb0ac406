package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	embedding "github.com/davidbz/hearth/internal/embedding/openai"
	provider "github.com/davidbz/hearth/internal/provider/openai"
)

// Config represents the pipeline configuration.
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Redis     RedisConfig
	OpenAI    provider.Config
	Embedding embedding.Config
	RAG       RAGConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"120"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// RedisConfig contains connection settings for the Redis backing store.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"       envDefault:"0"`
}

// RAGConfig contains ingestion and retrieval settings. Threshold and TopK
// are operational tuning parameters, not contracts.
type RAGConfig struct {
	ChunkCollection string `env:"RAG_CHUNK_COLLECTION" envDefault:"rag_chunks"`
	CacheCollection string `env:"RAG_CACHE_COLLECTION" envDefault:"llm_sem_cache"`

	ChunkWindow  int `env:"RAG_CHUNK_WINDOW"  envDefault:"1000"`
	ChunkOverlap int `env:"RAG_CHUNK_OVERLAP" envDefault:"200"`

	TopK           int     `env:"RAG_TOP_K"           envDefault:"8"`
	CacheThreshold float64 `env:"RAG_CACHE_THRESHOLD" envDefault:"0.99"`

	QueryCacheTTLDays int `env:"RAG_QUERY_CACHE_TTL_DAYS" envDefault:"60"`
	MaxQuestionLength int `env:"RAG_MAX_QUESTION_LENGTH"  envDefault:"500"`

	IndexMaxWaitSeconds int `env:"RAG_INDEX_MAX_WAIT" envDefault:"180"`

	PendingDir   string `env:"RAG_INPUT_DIR"     envDefault:"rag_input"`
	ProcessedDir string `env:"RAG_PROCESSED_DIR" envDefault:"rag_input/ingested"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*RedisConfig
	OpenAI    *provider.Config
	Embedding *embedding.Config
	*RAGConfig
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.Redis,
		&cfg.OpenAI,
		&cfg.Embedding,
		&cfg.RAG,
	}
}
