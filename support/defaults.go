package support

import (
	"github.com/joho/godotenv"
)

// EnvSetUp loads the environment variables used to override the configuration
// file. The local .env file takes precedence over the given alternative.
func EnvSetUp(envf string) {
	envFile := ".env"
	if !FileExists(envFile) {
		envFile = envf
	}
	if envFile != "" && FileExists(envFile) {
		if err := godotenv.Load(envFile); err != nil {
			panic("Fatal error: " + err.Error())
		}
	}
}
