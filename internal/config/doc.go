// Package config defines the application configuration and its loading
// from config files and environment variables.
package config
