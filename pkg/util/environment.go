package util

import (
	"os"
	"strings"
)

const environmentPrefix = "TRANSITHUB_"

// GetEnvironmentVariables returns every TRANSITHUB_ prefixed environment
// variable, keyed by full name.
func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		name, value, found := strings.Cut(variable, "=")
		if !found || !strings.HasPrefix(name, environmentPrefix) {
			continue
		}

		environmentVariables[name] = value
	}

	return environmentVariables
}
