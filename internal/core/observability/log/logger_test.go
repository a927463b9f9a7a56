package log

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level Level) (*Logger, *observer.ObservedLogs) {
	atomicLevel := zap.NewAtomicLevelAt(toZapLevel(level))
	core, logs := observer.New(atomicLevel)
	return &Logger{
		zapLogger: zap.New(core),
		level:     atomicLevel,
	}, logs
}

func TestLogger_SetLevelChangesEmission(t *testing.T) {
	l, logs := newObservedLogger(LevelInfo)

	l.Debug("suppressed")
	require.Zero(t, logs.Len())

	l.SetLevel(LevelDebug)
	require.Equal(t, LevelDebug, l.GetLevel())

	l.Debug("emitted", String("k", "v"))
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "emitted", logs.All()[0].Message)
}

func TestLogger_SetLevelReachesDerivedLoggers(t *testing.T) {
	l, logs := newObservedLogger(LevelWarn)
	child := l.With(String("component", "store"))

	child.Info("suppressed")
	require.Zero(t, logs.Len())

	l.SetLevel(LevelInfo)

	child.Info("emitted")
	require.Equal(t, 1, logs.Len())
}
