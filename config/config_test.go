package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLogLevel_ZeroLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level LogLevel
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "info", want: zerolog.InfoLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "", want: zerolog.InfoLevel},
		{level: "verbose", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.level.ZeroLog())
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{DatabaseDSN: "host=db user=app"}

	t.Setenv(EnvDBPassword, "")
	require.Equal(t, "host=db user=app", cfg.DSN())

	t.Setenv(EnvDBPassword, "s3cret")
	require.Equal(t, "host=db user=app password=s3cret", cfg.DSN())
}

func TestSessionSecret(t *testing.T) {
	t.Setenv(EnvSessionSecret, "short")
	_, err := SessionSecret()
	require.Error(t, err)

	t.Setenv(EnvSessionSecret, "0123456789abcdef0123456789abcdef")
	secret, err := SessionSecret()
	require.NoError(t, err)
	require.Len(t, secret, 32)
}
