package main

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	for _, env := range []string{envLocal, envDev, envProd, "unknown"} {
		t.Run(env, func(t *testing.T) {
			logger := setupLogger(env)

			require.NotNil(t, logger)
		})
	}

	ctx := t.Context()
	assert.True(t, setupLogger(envLocal).Enabled(ctx, -4))
	assert.False(t, setupLogger(envProd).Enabled(ctx, 0))
	assert.False(t, setupLogger("unknown").Enabled(ctx, 4))
}

func TestRunServer_GracefulShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	logger := setupLogger("unknown")
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	done := make(chan error, 1)
	go func() {
		done <- runServer(ctx, logger, handler, 0, time.Second)
	}()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}
