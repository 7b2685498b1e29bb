package configs

import (
	"log"
	"sync"

	"github.com/spf13/viper"
)

var (
	config *Config
	once   sync.Once
)

type Config struct {
	Viper *viper.Viper
}

func GetConfig() *Config {
	once.Do(func() {
		config = &Config{
			Viper: initializeViper(),
		}
	})
	return config
}

func initializeViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Printf("No config file found, using defaults and environment: %v", err)
	}

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8000")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "letter_chat")
	v.SetDefault("database.ssl", "disable")
	v.SetDefault("database.timezone", "UTC")

	v.SetDefault("redis.address", "localhost:6379")

	v.SetDefault("jwt.secret", "m2K0h8aUqtP0w6cNfRjZ7sVxB1eYdL3gHuT9iQ5oXkE=")
	v.SetDefault("jwt.expiration_time", 86400)

	// convergence cadences for viewing clients
	v.SetDefault("polling.conversation_interval_seconds", 3)
	v.SetDefault("polling.list_interval_seconds", 300)
	v.SetDefault("polling.max_consecutive_failures", 3)

	// unlock scheduler bounds
	v.SetDefault("scheduler.horizon_hours", 168)
	v.SetDefault("scheduler.slack_ms", 500)
}
