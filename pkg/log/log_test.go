package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRunID(t *testing.T) {
	ctx, runID := WithRunID(context.Background())

	_, err := uuid.Parse(runID)
	require.NoError(t, err)
	assert.Equal(t, runID, GetRunID(ctx))

	// Um contexto que já possui ID mantém o mesmo valor
	sameCtx, sameID := WithRunID(ctx)
	assert.Equal(t, runID, sameID)
	assert.Equal(t, ctx, sameCtx)
}

func TestLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	ctx, runID := WithRunID(context.Background())
	New(base).WithContext(ctx).WithField("product_id", "X").Info("previsão calculada")

	out := buf.String()
	assert.Contains(t, out, "run_id="+runID)
	assert.Contains(t, out, "product_id=X")
	assert.Contains(t, out, "previsão calculada")
}

func TestGetRunID_Empty(t *testing.T) {
	assert.Empty(t, GetRunID(context.Background()))
}
