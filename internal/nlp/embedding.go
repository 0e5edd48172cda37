package nlp

import (
	"context"
	"fmt"
	"math"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	defaultEmbeddingModel = "text-embedding-3-small"
	probeTimeout          = 10 * time.Second
)

// EmbeddingBackend is the similarity variant that encodes both texts into
// dense sentence vectors via an OpenAI-compatible embeddings endpoint and
// scores their cosine similarity. Transient request failures degrade to the
// frequency computation for that call instead of erroring.
type EmbeddingBackend struct {
	client   *openai.Client
	model    openai.EmbeddingModel
	fallback *FrequencyBackend
	log      *zap.Logger
}

// NewEmbeddingBackend constructs the embedding variant and probes the
// endpoint once. A probe failure is returned as an error so the caller can
// fall back to the frequency variant for the remainder of the process.
func NewEmbeddingBackend(ctx context.Context, cfg BackendConfig, log *zap.Logger) (*EmbeddingBackend, error) {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultEmbeddingModel
	}

	backend := &EmbeddingBackend{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    openai.EmbeddingModel(model),
		fallback: NewFrequencyBackend(),
		log:      log,
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if _, err := backend.embed(probeCtx, []string{"probe"}); err != nil {
		return nil, fmt.Errorf("embedding endpoint probe failed: %w", err)
	}
	return backend, nil
}

// Name implements SimilarityBackend.
func (e *EmbeddingBackend) Name() string { return "embedding" }

// Similarity implements SimilarityBackend.
func (e *EmbeddingBackend) Similarity(ctx context.Context, a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	vectors, err := e.embed(ctx, []string{a, b})
	if err != nil {
		e.log.Warn("embedding request failed, using frequency similarity for this call",
			zap.Error(err))
		return e.fallback.Similarity(ctx, a, b)
	}

	sim := cosineDense(vectors[0], vectors[1])
	return clampScore(sim * 100)
}

func (e *EmbeddingBackend) embed(ctx context.Context, inputs []string) ([][]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: inputs,
		Model: e.model,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) != len(inputs) {
		return nil, fmt.Errorf("embedding response has %d vectors, want %d", len(resp.Data), len(inputs))
	}
	vectors := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vectors[i] = d.Embedding
	}
	return vectors, nil
}

func cosineDense(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
