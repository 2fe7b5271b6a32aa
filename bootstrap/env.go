package bootstrap

import (
	"fmt"

	"github.com/spf13/viper"
)

type Env struct {
	AppEnv                string `mapstructure:"APP_ENV"`
	ServerAddress         string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout        int    `mapstructure:"CONTEXT_TIMEOUT"`
	DBUri                 string `mapstructure:"DB_URI"`
	DBName                string `mapstructure:"DB_NAME"`
	AccessTokenExpiryHour int    `mapstructure:"ACCESS_TOKEN_EXPIRY_HOUR"`
	AccessTokenSecret     string `mapstructure:"ACCESS_TOKEN_SECRET"`
	OpenAIAPIKey          string `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL         string `mapstructure:"OPENAI_BASE_URL"`
	OpenAIModel           string `mapstructure:"OPENAI_MODEL"`
	MediaDir              string `mapstructure:"MEDIA_DIR"`
	LogFilePath           string `mapstructure:"LOG_FILE_PATH"`
}

func NewEnv() *Env {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("CONTEXT_TIMEOUT", 10)
	viper.SetDefault("DB_URI", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "olprod")
	viper.SetDefault("ACCESS_TOKEN_EXPIRY_HOUR", 24)
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("MEDIA_DIR", "./media")

	viper.SetConfigFile(".env")
	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("no .env file found, relying on defaults and process environment")
	}
	viper.AutomaticEnv()

	env := Env{}
	if err := viper.Unmarshal(&env); err != nil {
		panic(fmt.Errorf("environment can't be loaded: %w", err))
	}

	if env.AppEnv == "development" {
		fmt.Println("the app is running in development env")
	}

	return &env
}
