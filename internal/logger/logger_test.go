package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/askiada/go-rat/internal/config"
	"github.com/askiada/go-rat/internal/logger"
)

func TestProvideNop(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.Provide(config.Default(), &buf)
	require.NoError(t, err)

	log.Error("hidden")
	assert.False(t, log.Core().Enabled(zap.ErrorLevel))
	assert.Empty(t, buf.String())
}

func TestProvideInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := logger.Provide(&config.Config{LogLevel: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestProvide(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		env  string
		want string
	}{
		"dev":  {env: "dev", want: "shown"},
		"prod": {env: "prod", want: `"msg":"shown"`},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log, err := logger.Provide(&config.Config{Env: tc.env, LogLevel: "warn"}, &buf)
			require.NoError(t, err)

			log.Info("hidden")
			log.Warn("shown", zap.String("path", "a.txt"))
			require.NoError(t, log.Sync())

			assert.Contains(t, buf.String(), tc.want)
			assert.Contains(t, buf.String(), "a.txt")
			assert.NotContains(t, buf.String(), "hidden")
		})
	}
}
