package cmd

import (
	"context"
	"time"

	"github.com/dev-shetty/easydiff/internal/config"
	"github.com/dev-shetty/easydiff/internal/log"
	"github.com/dev-shetty/easydiff/internal/tracing"
)

// setupTracing builds the trace provider from config and returns a
// shutdown function that flushes pending spans.
func setupTracing(tc config.TracingConfig) (func(), error) {
	filePath := tc.FilePath
	if filePath == "" {
		filePath = config.DefaultTracesFilePath()
	}

	provider, err := tracing.NewProvider(tracing.Config{
		Enabled:    tc.Enabled,
		Exporter:   tc.Exporter,
		FilePath:   filePath,
		SampleRate: tc.SampleRate,
	})
	if err != nil {
		return nil, err
	}

	if provider.Enabled() {
		log.Info(log.CatConfig, "Tracing enabled", "exporter", tc.Exporter)
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatConfig, "Flushing traces", err)
		}
	}, nil
}
