// Package config manages user settings stored at ~/.mbu/config.yaml. Values can
// be overridden with MBU_-prefixed environment variables, e.g. MBU_NAMESPACE.
package config
