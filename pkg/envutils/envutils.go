package envutils

import (
	"log"
	"os"
	"strconv"
)

func Env(variableName, defaultValue string) string {
	if variable := os.Getenv(variableName); variable != "" {
		log.Printf("[%s]: %s", variableName, variable)
		return variable
	}
	log.Printf("[%s_DEFAULT]: %s", variableName, defaultValue)
	return defaultValue
}

func EnvBool(variableName string, defaultValue bool) bool {
	value, err := strconv.ParseBool(Env(variableName, strconv.FormatBool(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return value
}
