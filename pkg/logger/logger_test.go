package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Levels(t *testing.T) {
	t.Cleanup(func() { _ = Init("info", "text") })

	require.NoError(t, Init("debug", "text"))
	assert.Equal(t, logrus.DebugLevel, Logger().GetLevel())

	require.NoError(t, Init("WARN", "json"))
	assert.Equal(t, logrus.WarnLevel, Logger().GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, Logger().Formatter)

	require.NoError(t, Init("", "nonsense"))
	assert.Equal(t, logrus.InfoLevel, Logger().GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, Logger().Formatter)

	require.NoError(t, Init("error", "text"))
	err := Init("verbose", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verbose")
	assert.Equal(t, logrus.ErrorLevel, Logger().GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, Logger().Formatter)
}

func TestWithContext_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init("info", "json"))
	SetOutput(&buf)
	t.Cleanup(func() {
		_ = Init("info", "text")
		SetOutput(os.Stdout)
	})

	ctx := ContextWithRequestID(context.Background(), "rid-42")
	WithContext(ctx).Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "rid-42", line["request_id"])
	assert.Equal(t, "hello", line["msg"])
}

func TestRequestIDFromContext(t *testing.T) {
	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = RequestIDFromContext(ContextWithRequestID(context.Background(), ""))
	assert.False(t, ok)

	rid, ok := RequestIDFromContext(ContextWithRequestID(context.Background(), "x"))
	assert.True(t, ok)
	assert.Equal(t, "x", rid)
}
