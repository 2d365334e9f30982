package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"prompt-enhancer/internal/models"
)

// LLMConfig holds connection settings for one OpenAI-compatible endpoint.
type LLMConfig struct {
	BaseURL string `yaml:"base_url"`
	Key     string `yaml:"key"`
	Model   string `yaml:"model"`
}

// RAGConfig holds chunking and retrieval settings.
type RAGConfig struct {
	ChunkSize     int     `yaml:"chunk_size"`
	ChunkOverlap  int     `yaml:"chunk_overlap"`
	ChunkStrategy string  `yaml:"chunk_strategy"`
	VectorWeight  float64 `yaml:"vector_weight"`
	KeywordWeight float64 `yaml:"keyword_weight"`
	TopK          int     `yaml:"top_k"`
	CacheDir      string  `yaml:"cache_dir"`
}

type Config struct {
	LLM      LLMConfig `yaml:"llm"`
	EmbedLLM LLMConfig `yaml:"embed_llm"`
	RAG      RAGConfig `yaml:"rag"`
}

// LoadConfig reads a YAML config file and applies defaults for unset RAG
// values. The LLM API key may be overridden with PROMPT_ENHANCER_LLM_KEY.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if key := os.Getenv("PROMPT_ENHANCER_LLM_KEY"); key != "" {
		cfg.LLM.Key = key
		if cfg.EmbedLLM.Key == "" {
			cfg.EmbedLLM.Key = key
		}
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.RAG.ChunkSize <= 0 {
		c.RAG.ChunkSize = models.DefaultChunkSize
	}
	if c.RAG.ChunkOverlap <= 0 {
		c.RAG.ChunkOverlap = models.DefaultChunkOverlap
	}
	if c.RAG.ChunkStrategy == "" {
		c.RAG.ChunkStrategy = "semantic"
	}
	if c.RAG.VectorWeight <= 0 && c.RAG.KeywordWeight <= 0 {
		c.RAG.VectorWeight = models.DefaultVectorWeight
		c.RAG.KeywordWeight = models.DefaultKeywordWeight
	}
	if c.RAG.TopK <= 0 {
		c.RAG.TopK = models.DefaultTopK
	}
}
