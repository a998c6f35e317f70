package logging

import (
	"testing"

	"github.com/jobcomp/jobcomp/internal/calculation"
	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestLogger_ImplementsCalculationLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var l calculation.Logger = FromZap(zap.New(core))

	engine := calculation.NewDefaultEngine()
	engine.SetLogger(l)
	engine.Credits(domain.DefaultDeductions())
	l.Warnf("unknown key %q", "sleva_x")

	require.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Equal(t, `unknown key "sleva_x"`, logs.All()[0].Message)
}

func TestNew(t *testing.T) {
	l, err := New("debug", true)
	require.NoError(t, err)
	assert.True(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
	l.Sync()

	l, err = New("error", false)
	require.NoError(t, err)
	assert.False(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))

	assert.NotPanics(t, func() { Nop().Infof("dropped %d", 1) })
}
