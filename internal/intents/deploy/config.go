// internal/intents/deploy/config.go
package deploy

type Config struct {
	// ProdEnvironment is the environment value that requires an ITSM
	// change ticket before scheduling.
	ProdEnvironment string
}

func LoadConfig() *Config {
	return &Config{
		ProdEnvironment: "prod",
	}
}
