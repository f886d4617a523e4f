package recipepairs

import (
	"testing"

	"github.com/joeshaw/envdecode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Defaults(t *testing.T) {
	t.Setenv("RECIPES_PATH", "")
	t.Setenv("SHOPPING_LIST_PATH", "")
	t.Setenv("LOG_LEVEL", "")

	var cfg AppConfig
	require.NoError(t, envdecode.Decode(&cfg))

	assert.Equal(t, "artifacts/recipes.txt", cfg.RecipesPath)
	assert.Equal(t, "selected_ingredients.txt", cfg.ShoppingListPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "#groceries", cfg.SlackChannel)
}

func TestAppConfig_FromEnv(t *testing.T) {
	t.Setenv("RECIPES_PATH", "/tmp/cookbook.txt")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SLACK_WEBHOOK_URL", "http://example.com/webhook")

	var cfg AppConfig
	require.NoError(t, envdecode.Decode(&cfg))

	assert.Equal(t, "/tmp/cookbook.txt", cfg.RecipesPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://example.com/webhook", cfg.SlackWebhookURL)
}

func TestS3Config_Required(t *testing.T) {
	t.Setenv("ARTIFACTS_S3_BUCKET", "")
	t.Setenv("ARTIFACTS_RECIPES_S3_KEY", "")

	var cfg S3Config
	assert.Error(t, envdecode.Decode(&cfg))

	t.Setenv("ARTIFACTS_S3_BUCKET", "artifacts")
	t.Setenv("ARTIFACTS_RECIPES_S3_KEY", "recipes.txt")

	require.NoError(t, envdecode.Decode(&cfg))
	assert.Equal(t, "artifacts", cfg.Bucket)
	assert.Equal(t, "selected_ingredients.txt", cfg.ShoppingListKey)
}
