package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	previous := L
	L = &logger{entry: logrus.NewEntry(base)}
	t.Cleanup(func() { L = previous })

	return buf
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext_AddsCorrelationID(t *testing.T) {
	buf := captureLogger(t)
	ctx, id := WithCorrelationID(context.Background())

	ForContext(ctx).Info("olá")

	assert.Contains(t, buf.String(), "correlation_id="+id)
}

func TestWithFields_DevelopmentFiltersNoise(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureLogger(t)

	L.WithFields(Fields{"record_id": "abc", "internal": "x", "path": "/v1"}).Info("filtrado")

	out := buf.String()
	assert.Contains(t, out, "record_id=abc")
	assert.Contains(t, out, "path=/v1")
	assert.NotContains(t, out, "internal=x")
}

func TestWithFields_ProductionKeepsEverything(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureLogger(t)

	L.WithField("internal", "x").Info("completo")

	assert.Contains(t, buf.String(), "internal=x")
}
