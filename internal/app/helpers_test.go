package app_test

import (
	"os"

	json "github.com/goccy/go-json"
)

func writeJSON(path string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
