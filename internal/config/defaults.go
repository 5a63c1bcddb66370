package config

import (
	_ "embed"
)

//go:embed defaults/alef.yaml
var defaultGameYAML []byte
