package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "toml":
		return tomlTemplate, nil
	case "yaml", "yml":
		return yamlTemplate, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const tomlTemplate = `[buffer]
initial_capacity = 4096
max_capacity = 0
strict = false

[args]
token_max = 512
delimiter = " "

[log]
level = "info"
timestamp = true
no_color = false
`

const yamlTemplate = `buffer:
  initial_capacity: 4096
  max_capacity: 0
  strict: false
args:
  token_max: 512
  delimiter: " "
log:
  level: info
  timestamp: true
  no_color: false
`
