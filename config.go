package recipepairs

type AppConfig struct {
	RecipesPath      string `env:"RECIPES_PATH,default=artifacts/recipes.txt"`
	ShoppingListPath string `env:"SHOPPING_LIST_PATH,default=selected_ingredients.txt"`
	SessionLogDir    string `env:"SESSION_LOG_DIR,default=./logs"`
	LogLevel         string `env:"LOG_LEVEL,default=info"`
	SlackWebhookURL  string `env:"SLACK_WEBHOOK_URL"`
	SlackChannel     string `env:"SLACK_CHANNEL,default=#groceries"`
}

type S3Config struct {
	Bucket          string `env:"ARTIFACTS_S3_BUCKET,required"`
	RecipesKey      string `env:"ARTIFACTS_RECIPES_S3_KEY,required"`
	ShoppingListKey string `env:"ARTIFACTS_SHOPPING_LIST_S3_KEY,default=selected_ingredients.txt"`
}
