package config

import _ "embed"

// DefaultConfigYAML 内置默认配置
//
//go:embed default.yaml
var DefaultConfigYAML []byte

const defaultJWTSecret = "navsite-change-me"
