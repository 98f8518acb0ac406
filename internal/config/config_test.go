package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/hearth/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 120, cfg.Server.WriteTimeout)
		require.Equal(t, "localhost:6379", cfg.Redis.Addr)
		require.Equal(t, 0, cfg.Redis.DB)
		require.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
		require.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
		require.Empty(t, cfg.OpenAI.APIKey)
		require.Equal(t, "text-embedding-3-small", cfg.Embedding.Model)

		require.Equal(t, "rag_chunks", cfg.RAG.ChunkCollection)
		require.Equal(t, "llm_sem_cache", cfg.RAG.CacheCollection)
		require.Equal(t, 1000, cfg.RAG.ChunkWindow)
		require.Equal(t, 200, cfg.RAG.ChunkOverlap)
		require.Equal(t, 8, cfg.RAG.TopK)
		require.InEpsilon(t, 0.99, cfg.RAG.CacheThreshold, 0.0001)
		require.Equal(t, 60, cfg.RAG.QueryCacheTTLDays)
		require.Equal(t, 500, cfg.RAG.MaxQuestionLength)
		require.Equal(t, 180, cfg.RAG.IndexMaxWaitSeconds)
		require.Equal(t, "rag_input", cfg.RAG.PendingDir)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("REDIS_ADDR", "redis.internal:6380")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("OPENAI_API_KEY", "sk-test-key")
		t.Setenv("RAG_CHUNK_COLLECTION", "corpus")
		t.Setenv("RAG_TOP_K", "4")
		t.Setenv("RAG_CACHE_THRESHOLD", "0.95")
		t.Setenv("RAG_QUERY_CACHE_TTL_DAYS", "14")
		t.Setenv("RAG_INPUT_DIR", "/data/pending")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
		require.Equal(t, 2, cfg.Redis.DB)
		require.Equal(t, "sk-test-key", cfg.OpenAI.APIKey)
		require.Equal(t, "corpus", cfg.RAG.ChunkCollection)
		require.Equal(t, 4, cfg.RAG.TopK)
		require.InEpsilon(t, 0.95, cfg.RAG.CacheThreshold, 0.0001)
		require.Equal(t, 14, cfg.RAG.QueryCacheTTLDays)
		require.Equal(t, "/data/pending", cfg.RAG.PendingDir)
	})
}

func TestParseDependenciesConfig(t *testing.T) {
	os.Clearenv()

	cfg := config.Load()
	deps := config.ParseDependenciesConfig(cfg)

	require.Same(t, &cfg.Server, deps.ServerConfig)
	require.Same(t, &cfg.Redis, deps.RedisConfig)
	require.Same(t, &cfg.RAG, deps.RAGConfig)
}
