package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"prompt-enhancer/internal/chunker"
	"prompt-enhancer/internal/config"
	"prompt-enhancer/internal/embedding"
	"prompt-enhancer/internal/helper"
	"prompt-enhancer/internal/knowledge"
	"prompt-enhancer/internal/llm"
	"prompt-enhancer/internal/loader"
	"prompt-enhancer/internal/models"
	"prompt-enhancer/internal/pipeline"
	"prompt-enhancer/internal/retriever"
)

const configFilePath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	_ = godotenv.Load()

	configPath := flag.String("config", configFilePath, "Path to the config file")
	prompt := flag.String("prompt", "", "Prompt to enhance")
	query := flag.String("search", "", "Run a hybrid search against the knowledge base and print results")
	docsDir := flag.String("docs", "", "Optional directory of extra documents to index")
	flag.Parse()

	if *prompt == "" && *query == "" {
		log.Fatal().Msg("Please provide a prompt using the -prompt flag or a query using the -search flag")
	}
	if *prompt != "" && *query != "" {
		log.Fatal().Msg("Please provide either -prompt or -search, but not both")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}
	log.Debug().Interface("config", cfg).Msg("Loaded config")

	ctx := context.Background()

	if *query != "" {
		searchKnowledge(ctx, cfg, *query, *docsDir)
		return
	}
	enhancePrompt(ctx, cfg, *prompt, *docsDir)
}

func enhancePrompt(ctx context.Context, cfg *config.Config, prompt, docsDir string) {
	store := knowledge.NewStore()
	hybrid := buildRetriever(ctx, cfg, store, docsDir)

	gateway, err := llm.NewOpenAIGateway(&cfg.LLM, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing LLM gateway")
	}

	orchestrator := pipeline.NewOrchestrator(
		pipeline.NewLLMCategorizer(gateway, store, log.Logger),
		pipeline.NewLLMSafetyChecker(gateway, log.Logger),
		pipeline.NewStoreRetriever(store, hybrid, log.Logger),
		pipeline.NewLLMEnhancer(gateway, log.Logger),
		log.Logger,
		cfg.RAG.TopK,
	)

	result, err := orchestrator.ProcessPrompt(ctx, prompt)
	if err != nil {
		log.Fatal().Err(err).Msg("Error processing prompt")
	}

	log.Info().Msg("Result: ~~~~~~~~~~~~~~~~~~~~~~~~~>>>>>")
	helper.PrettyPrint(result)

	log.Info().Msg("Enhanced prompt: ~~~~~~~~~~~~~~~~~~~~~~~~~>>>>>")
	fmt.Printf("%s\n\n", result.EnhancedPrompt)
}

func searchKnowledge(ctx context.Context, cfg *config.Config, query, docsDir string) {
	store := knowledge.NewStore()
	hybrid := buildRetriever(ctx, cfg, store, docsDir)

	results, err := hybrid.HybridSearch(ctx, query, cfg.RAG.TopK)
	if err != nil {
		log.Fatal().Err(err).Msg("Error searching knowledge base")
	}

	log.Info().Msg("Query: ~~~~~~~~~~~~~~~~~~~~~~~~~>>>>>")
	fmt.Printf("%s\n\n", query)

	log.Info().Msg("Results: ~~~~~~~~~~~~~~~~~~~~~~~~~>>>>>")
	helper.PrettyPrint(results)
}

// buildRetriever chunks the technique catalog (plus any extra documents)
// and builds or loads the hybrid indices.
func buildRetriever(ctx context.Context, cfg *config.Config, store *knowledge.Store, docsDir string) *retriever.HybridRetriever {
	embedder, err := embedding.NewOpenAIEmbedder(&cfg.EmbedLLM)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing embedder")
	}

	ch := chunker.New(cfg.RAG.ChunkSize, cfg.RAG.ChunkOverlap, chunker.ParseStrategy(cfg.RAG.ChunkStrategy))

	var chunks []models.DocumentChunk
	for _, t := range store.All() {
		techChunks := ch.ChunkDocument(t.Render(), t.Name)
		for i := range techChunks {
			if techChunks[i].Metadata == nil {
				techChunks[i].Metadata = make(map[string]string)
			}
			techChunks[i].Metadata["technique_name"] = t.Name
			techChunks[i].Metadata["category"] = string(t.Category)
		}
		chunks = append(chunks, techChunks...)
	}

	if docsDir != "" {
		docs, err := loader.New(log.Logger).LoadDir(docsDir)
		if err != nil {
			log.Fatal().Err(err).Msg("Error loading documents")
		}
		for _, doc := range docs {
			chunks = append(chunks, ch.ChunkDocument(doc.Content, doc.Name)...)
		}
	}

	log.Info().Int("chunks", len(chunks)).Msg("Knowledge base chunked")

	hybrid := retriever.New(embedder, log.Logger, cfg.RAG.VectorWeight, cfg.RAG.KeywordWeight)
	if cfg.RAG.CacheDir != "" {
		if err := helper.CreateFolder(cfg.RAG.CacheDir); err != nil {
			log.Fatal().Err(err).Msg("Error creating cache folder")
		}
		if err := hybrid.BuildIndicesWithCache(ctx, chunks, cfg.RAG.CacheDir); err != nil {
			log.Fatal().Err(err).Msg("Error building indices")
		}
		return hybrid
	}
	if err := hybrid.BuildIndices(ctx, chunks); err != nil {
		log.Fatal().Err(err).Msg("Error building indices")
	}
	return hybrid
}
