// Package config loads application settings with viper from defaults, an
// optional config.yaml and CLEANAPI_-prefixed environment variables, then
// validates them with struct tags so that the rest of the application can
// rely on a complete, type-safe Config.
package config
