package root

import (
	"context"
	"fmt"
	"io"

	"supercharge/internal/ai"
	"supercharge/internal/config"
	"supercharge/internal/engine"
	"supercharge/internal/storage"
	"supercharge/internal/ui"
)

// errGenerator defers a generator construction error until an AI-backed
// command actually runs: commands that never generate anything should not
// require an API key.
type errGenerator struct {
	err error
}

func (g errGenerator) Motivation(ctx context.Context, user engine.Profile) (string, error) {
	return "", g.err
}

func (g errGenerator) Routine(ctx context.Context, user engine.Profile) ([]engine.TaskSuggestion, error) {
	return nil, g.err
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	path, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	var gen engine.Generator
	gen, genErr := ai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.Model)
	if genErr != nil {
		gen = errGenerator{err: genErr}
	}

	svc := engine.NewService(storage.NewStateRepo(db), gen)
	if err := svc.Open(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}

func printNotices(out io.Writer, notices []engine.Notice) {
	for _, n := range notices {
		fmt.Fprintf(out, "%s %s\n", ui.Gold.Render(n.Title), ui.Muted.Render(n.Detail))
	}
}
