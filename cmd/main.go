package main

import (
	"context"
	"log"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"github.com/davidbz/hearth/internal/config"
	"github.com/davidbz/hearth/internal/domain"
	embedding "github.com/davidbz/hearth/internal/embedding/openai"
	"github.com/davidbz/hearth/internal/httpserver"
	"github.com/davidbz/hearth/internal/httpserver/middleware"
	"github.com/davidbz/hearth/internal/observability"
	"github.com/davidbz/hearth/internal/provider/echo"
	provider "github.com/davidbz/hearth/internal/provider/openai"
	"github.com/davidbz/hearth/internal/source"
	redisstore "github.com/davidbz/hearth/internal/store/redis"
)

const hoursPerDay = 24

func main() {
	container := buildContainer()

	err := container.Invoke(func(store *redisstore.Store, server *httpserver.Server) {
		if err := store.Ping(context.Background()); err != nil {
			log.Fatalf("Redis is not reachable: %v", err)
		}
		if err := server.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

//nolint:funlen // container wiring is one long list by nature
func buildContainer() *dig.Container {
	container := dig.New()

	provide := func(constructor any) {
		if err := container.Provide(constructor); err != nil {
			log.Fatalf("Failed to provide dependency: %v", err)
		}
	}

	// Configuration
	provide(config.Load)
	provide(config.ParseDependenciesConfig)

	// Observability
	provide(observability.InitLogger)

	// Redis client and store adapters
	provide(func(cfg *config.RedisConfig) *goredis.Client {
		return goredis.NewClient(&goredis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	})
	provide(redisstore.NewStore)
	provide(redisstore.NewEmbeddingStore)
	provide(func(s *redisstore.Store) domain.VectorStore { return s })
	provide(func(s *redisstore.Store) domain.IndexAdmin { return s })
	provide(func(s *redisstore.EmbeddingStore) domain.EmbeddingStore { return s })

	// Embedding provider
	provide(func(cfg *embedding.Config) (domain.EmbeddingProvider, error) {
		return embedding.NewGenerator(*cfg)
	})

	// Chat provider: OpenAI when configured, echo for offline development
	provide(func(cfg *provider.Config) (domain.ChatProvider, error) {
		if cfg.APIKey == "" {
			return echo.NewProvider(), nil
		}
		return provider.NewProvider(*cfg)
	})

	// Domain services
	provide(func(p domain.EmbeddingProvider, store domain.EmbeddingStore, rag *config.RAGConfig) *domain.CachedEmbedder {
		ttl := time.Duration(rag.QueryCacheTTLDays) * hoursPerDay * time.Hour
		return domain.NewCachedEmbedder(p, store, ttl)
	})
	provide(func(admin domain.IndexAdmin, rag *config.RAGConfig) *domain.IndexManager {
		collections := []string{rag.ChunkCollection, rag.CacheCollection}
		maxWait := time.Duration(rag.IndexMaxWaitSeconds) * time.Second
		return domain.NewIndexManager(admin, collections, maxWait)
	})
	provide(func(rag *config.RAGConfig) (*domain.Splitter, error) {
		return domain.NewSplitter(rag.ChunkWindow, rag.ChunkOverlap)
	})
	provide(func(rag *config.RAGConfig) (domain.SourceArea, error) {
		return source.NewDir(rag.PendingDir, rag.ProcessedDir)
	})
	provide(func(
		store domain.VectorStore,
		embedder *domain.CachedEmbedder,
		splitter *domain.Splitter,
		indexes *domain.IndexManager,
		area domain.SourceArea,
		rag *config.RAGConfig,
	) *domain.Pipeline {
		return domain.NewPipeline(store, embedder, splitter, indexes, area, rag.ChunkCollection)
	})
	provide(func(embedder *domain.CachedEmbedder, store domain.VectorStore, rag *config.RAGConfig) *domain.ResponseCache {
		return domain.NewResponseCache(embedder, store, rag.CacheCollection, rag.CacheThreshold)
	})
	provide(func(
		store domain.VectorStore,
		embedder *domain.CachedEmbedder,
		chat domain.ChatProvider,
		cache *domain.ResponseCache,
		indexes *domain.IndexManager,
		rag *config.RAGConfig,
	) *domain.Orchestrator {
		return domain.NewOrchestrator(store, embedder, chat, cache, indexes,
			rag.ChunkCollection, rag.CacheCollection, rag.TopK)
	})

	// HTTP layer
	provide(func(
		pipeline *domain.Pipeline,
		orchestrator *domain.Orchestrator,
		store domain.VectorStore,
		rag *config.RAGConfig,
	) *httpserver.Handler {
		return httpserver.NewHandler(pipeline, orchestrator, store, rag.ChunkCollection, rag.MaxQuestionLength)
	})
	provide(middleware.BuildMiddlewareChain)
	provide(httpserver.NewServer)

	return container
}
