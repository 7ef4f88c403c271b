package util

import (
	"github.com/spf13/viper"
)

// Config holds the service configuration, read from an app.env file or from
// environment variables.
type Config struct {
	Environment       string   `mapstructure:"ENVIRONMENT"`
	HTTPServerAddress string   `mapstructure:"HTTP_SERVER_ADDRESS"`
	AllowedOrigins    []string `mapstructure:"ALLOWED_ORIGINS"`
}

// LoadConfig reads configuration from the app.env file at path, with
// environment variables taking precedence over file values.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
