package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"passvault/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		debugOn     bool
	}{
		{name: "local environment", env: config.EnvLocal, debugOn: true},
		{name: "dev environment", env: config.EnvDev, debugOn: true},
		{name: "prod environment", env: config.EnvProd, debugOn: false},
		{name: "unknown falls back to pretty", env: "", debugOn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.env)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.Equal(t, tt.debugOn, log.Enabled(ctx, slog.LevelDebug))
			assert.True(t, log.Enabled(ctx, slog.LevelInfo))
		})
	}
}
