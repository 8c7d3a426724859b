// Package constants provides shared constants for the english-calendar application
package constants

// AppName is the name reported in logs at startup
const AppName = "English Calendar"

// EnvPrefix is the prefix for environment variables overriding configuration
const EnvPrefix = "CALENDAR_"

// DefaultConfigPath is used when CONFIG_FILE is not set
const DefaultConfigPath = "configs/calendar.toml"
