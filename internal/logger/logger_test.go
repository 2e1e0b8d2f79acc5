package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultLoggerIsUsableBeforeInitialize(t *testing.T) {
	assert.NotPanics(t, func() {
		Info("hello", zap.String("k", "v"))
		WarnCtx(context.Background(), "warn")
		Error(nil)
	})
}

func TestInitialize_WithoutSentry(t *testing.T) {
	require.NoError(t, Initialize(Config{Debug: true}))
	assert.NotNil(t, Default())
	assert.Nil(t, sentryClient)

	assert.NotPanics(t, func() {
		ErrorCtx(context.Background(), errors.New("boom"), zap.Int("attempt", 1))
		With(zap.String("component", "test")).Debug("debug")
		Flush(0)
	})
}

func TestInitialize_InvalidSentryDSN(t *testing.T) {
	err := Initialize(Config{SentryDSN: "not a dsn"})
	assert.Error(t, err)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "error occurred", errorMessage(nil))
	assert.Equal(t, "boom", errorMessage(errors.New("boom")))
}
