package logging_test

import (
	"testing"

	"github.com/sghaida/bddkit/internal/config"
	"github.com/sghaida/bddkit/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Table(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		cfg       config.Logging
		wantLevel zapcore.Level
		wantErr   string
	}{
		{name: "json info", cfg: config.Logging{Level: "info", Format: "json"}, wantLevel: zapcore.InfoLevel},
		{name: "console debug", cfg: config.Logging{Level: "debug", Format: "console"}, wantLevel: zapcore.DebugLevel},
		{name: "empty format is console", cfg: config.Logging{Level: "warn"}, wantLevel: zapcore.WarnLevel},
		{name: "bad level", cfg: config.Logging{Level: "loud", Format: "json"}, wantErr: "logging:"},
		{name: "bad format", cfg: config.Logging{Level: "info", Format: "xml"}, wantErr: `unknown format "xml"`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			l, err := logging.New(tc.cfg)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tc.wantLevel))
			assert.False(t, l.Core().Enabled(tc.wantLevel-1))
		})
	}
}

func TestNop_DiscardsEverything(t *testing.T) {
	t.Parallel()

	l := logging.Nop()
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}
