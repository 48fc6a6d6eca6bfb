package requestid_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uikit/pkg/logger"
	"github.com/dmitrymomot/uikit/pkg/requestid"
)

func TestNew(t *testing.T) {
	t.Parallel()

	id := requestid.New()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, requestid.New())
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	t.Run("generates id when missing", func(t *testing.T) {
		t.Parallel()
		ctx, id := requestid.Ensure(context.Background())
		assert.NotEmpty(t, id)
		assert.Equal(t, id, requestid.FromContext(ctx))
	})

	t.Run("reuses valid id", func(t *testing.T) {
		t.Parallel()
		ctx := requestid.WithContext(context.Background(), "test-request-id-123")
		_, id := requestid.Ensure(ctx)
		assert.Equal(t, "test-request-id-123", id)
	})

	t.Run("replaces invalid id", func(t *testing.T) {
		t.Parallel()
		ctx := requestid.WithContext(context.Background(), "bad id\r\nX-Injected: 1")
		ctx, id := requestid.Ensure(ctx)
		assert.NotEqual(t, "bad id\r\nX-Injected: 1", id)
		assert.Equal(t, id, requestid.FromContext(ctx))
	})
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, requestid.IsValid("abc_DEF-123"))
	assert.False(t, requestid.IsValid(""))
	assert.False(t, requestid.IsValid("has space"))
	assert.False(t, requestid.IsValid(strings.Repeat("a", 129)))
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Empty(t, requestid.FromContext(nil))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	log.InfoContext(requestid.WithContext(context.Background(), "req-1"), "with id")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)

	buf.Reset()
	log.InfoContext(context.Background(), "without id")
	assert.NotContains(t, buf.String(), "request_id")
}
