package nlp

import (
	"context"

	"go.uber.org/zap"
)

// SimilarityBackend computes a 0-100 semantic-similarity score between two
// text blocks. Implementations never fail per call: degenerate or empty
// input yields 0 and transient backend trouble degrades to the frequency
// computation rather than surfacing an error.
type SimilarityBackend interface {
	// Similarity returns a score in [0, 100].
	Similarity(ctx context.Context, a, b string) float64
	// Name identifies the active variant ("embedding" or "frequency").
	Name() string
}

// BackendConfig configures similarity backend selection.
type BackendConfig struct {
	// APIKey and BaseURL point the embedding variant at an OpenAI-compatible
	// embeddings endpoint. When both are empty the frequency variant is used.
	APIKey  string
	BaseURL string
	Model   string
}

// SelectBackend resolves the similarity backend once, at startup. The
// embedding variant is chosen only when it is configured and a probe request
// succeeds; any failure permanently selects the frequency variant for the
// remainder of the process. The choice is never re-checked per call.
func SelectBackend(ctx context.Context, cfg BackendConfig, log *zap.Logger) SimilarityBackend {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.APIKey == "" && cfg.BaseURL == "" {
		log.Info("similarity backend selected", zap.String("backend", "frequency"))
		return NewFrequencyBackend()
	}

	backend, err := NewEmbeddingBackend(ctx, cfg, log)
	if err != nil {
		log.Warn("embedding backend unavailable, falling back to frequency",
			zap.Error(err))
		return NewFrequencyBackend()
	}
	log.Info("similarity backend selected",
		zap.String("backend", backend.Name()),
		zap.String("model", cfg.Model))
	return backend
}
