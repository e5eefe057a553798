package gamedata

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads, unmarshals and validates a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	return Parse[T](filename, content)
}

// Parse unmarshals and validates JSON content. The name is used in error messages.
func Parse[T any](name string, content []byte) (T, error) {
	var result T

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", name, err)
	}

	if err := validate.Struct(result); err != nil {
		return result, fmt.Errorf("invalid data in %s: %w", name, err)
	}

	return result, nil
}
