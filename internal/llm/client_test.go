package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient_ProviderSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("unimplemented provider", func(t *testing.T) {
		for _, provider := range []Provider{ProviderOpenAI, ProviderAnthropic} {
			client, err := NewClient(ctx, &Config{Provider: provider}, "test-key")
			assert.Nil(t, client)
			assert.ErrorContains(t, err, "not yet supported")
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		client, err := NewClient(ctx, &Config{Provider: "bedrock"}, "test-key")
		assert.Nil(t, client)
		assert.ErrorContains(t, err, "unknown provider")
	})

	t.Run("gemini requires api key", func(t *testing.T) {
		client, err := NewClient(ctx, DefaultConfig(), "")
		assert.Nil(t, client)
		assert.Error(t, err)
	})
}
