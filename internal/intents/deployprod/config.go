// internal/intents/deployprod/config.go
package deployprod

type Config struct {
	// ProdEnvironment names the environment announced in notifications.
	ProdEnvironment string
}

func LoadConfig() *Config {
	return &Config{
		ProdEnvironment: "prod",
	}
}
