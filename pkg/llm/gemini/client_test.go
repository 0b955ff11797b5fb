package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), Config{})
	require.Error(t, err)

	_, err = New(context.Background(), Config{APIKey: "   "})
	require.Error(t, err)
}

func TestNewAppliesDefaults(t *testing.T) {
	c, err := New(context.Background(), Config{APIKey: "test-key"})
	require.NoError(t, err)
	assert.Equal(t, defaultModel, c.Model())

	c, err = New(context.Background(), Config{APIKey: "test-key", Model: "gemini-2.5-pro"})
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", c.Model())
}

func TestCompleteGuards(t *testing.T) {
	var nilClient *Client
	_, err := nilClient.Complete(context.Background(), "hi")
	require.Error(t, err)

	_, err = (&Client{}).Complete(context.Background(), "hi")
	require.Error(t, err)

	c, err := New(context.Background(), Config{APIKey: "test-key"})
	require.NoError(t, err)
	_, err = c.Complete(context.Background(), "   ")
	require.Error(t, err)
}
