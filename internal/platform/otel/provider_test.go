package otel_test

import (
	"context"
	"testing"

	"freight/internal/platform/otel"

	"github.com/stretchr/testify/require"
)

func TestSetup_NoopWhenDisabled(t *testing.T) {
	for name, cfg := range map[string]otel.Config{
		"disabled":       {Enabled: false, Endpoint: "http://localhost:4318"},
		"empty_endpoint": {Enabled: true},
	} {
		t.Run(name, func(t *testing.T) {
			shutdown, err := otel.Setup(context.Background(), "freight-test", cfg)
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			require.NoError(t, shutdown(ctx))
		})
	}
}

func TestSetup_ProviderShutsDownCleanly(t *testing.T) {
	// Non-routable address; nothing is exported because no span is recorded.
	shutdown, err := otel.Setup(context.Background(), "freight-test",
		otel.Config{Enabled: true, Endpoint: "http://192.0.2.1:4318"})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
