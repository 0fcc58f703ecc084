package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	t.Run("Reaproveita o ID recebido", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), " req-123 ")

		assert.Equal(t, "req-123", id)
		assert.Equal(t, "req-123", GetCorrelationID(ctx))
	})

	t.Run("Gera UUID quando não há ID", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "")

		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, GetCorrelationID(ctx))
	})

	t.Run("Contexto sem ID", func(t *testing.T) {
		assert.Empty(t, GetCorrelationID(context.Background()))
	})
}

func TestIsDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "")
	assert.True(t, IsDevelopment())

	t.Setenv("APP_ENV", "production")
	assert.False(t, IsDevelopment())
}

func TestWithFields_FiltraEmDesenvolvimento(t *testing.T) {
	SetupTestLogger()

	t.Setenv("APP_ENV", "dev")
	l := L.WithFields(Fields{"path": "/v1/filters", "user_agent": "curl", "bundle_id": "abc"}).(*logger)
	assert.Contains(t, l.entry.Data, "path")
	assert.Contains(t, l.entry.Data, "bundle_id")
	assert.Contains(t, l.entry.Data, "user_agent", "campos user_ são mantidos")

	l = L.WithFields(Fields{"referer": "x"}).(*logger)
	assert.Empty(t, l.entry.Data)

	t.Setenv("APP_ENV", "production")
	l = L.WithFields(Fields{"referer": "x"}).(*logger)
	assert.Equal(t, "x", l.entry.Data["referer"])
}
