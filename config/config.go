package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Parser    ParserConfig
	Export    ExportConfig
	FileState FileStateConfig
	LogLevel  string
}

type ServerConfig struct {
	Port string
}

type ParserConfig struct {
	Separator         string
	LenientTimestamps bool
	Timezone          string
	Location          *time.Location `json:"-"`
}

type ExportConfig struct {
	Sources   []string // Log files served by the API and the scheduled export
	Schedule  string   // Cron schedule with seconds; empty disables scheduled exports
	Directory string   // Empty keeps exports next to their source
}

type FileStateConfig struct {
	FilePath string
}

// SetDefaults registers every key's default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PARSER_SEPARATOR", " > ")
	v.SetDefault("PARSER_LENIENT_TIMESTAMPS", false)
	v.SetDefault("PARSER_TIMEZONE", "UTC")
	v.SetDefault("LOG_SOURCES", "")
	v.SetDefault("EXPORT_SCHEDULE", "")
	v.SetDefault("EXPORT_DIRECTORY", "")
	v.SetDefault("FILE_STATE_PATH", "./export_state.json")
}

// ReadConfig loads configFile, or ./.env when configFile is empty, into v and
// builds a Config. Environment variables and flags bound to v take precedence
// over the file. A missing ./.env is not an error.
func ReadConfig(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		// Configure Viper to read .env file
		v.SetConfigName(".env")
		v.SetConfigType("env")
		v.AddConfigPath(".")
	}

	// Enable automatic environment variable loading
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if configFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		log.Debug().Err(err).Msg("No config file loaded")
	}

	return Load(v)
}

// Load builds a Config from an already populated viper instance.
func Load(v *viper.Viper) (*Config, error) {
	var config Config
	config.Server.Port = v.GetString("SERVER_PORT")
	config.LogLevel = v.GetString("LOG_LEVEL")

	// --- Parser ---
	config.Parser.Separator = v.GetString("PARSER_SEPARATOR")
	if config.Parser.Separator == "" {
		return nil, fmt.Errorf("PARSER_SEPARATOR must not be empty")
	}
	config.Parser.LenientTimestamps = v.GetBool("PARSER_LENIENT_TIMESTAMPS")
	config.Parser.Timezone = v.GetString("PARSER_TIMEZONE")
	loc, err := time.LoadLocation(config.Parser.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid PARSER_TIMEZONE %q: %w", config.Parser.Timezone, err)
	}
	config.Parser.Location = loc

	// --- Export ---
	config.Export.Sources = splitList(v.GetString("LOG_SOURCES"))
	config.Export.Schedule = v.GetString("EXPORT_SCHEDULE")
	config.Export.Directory = v.GetString("EXPORT_DIRECTORY")

	// --- File State ---
	config.FileState.FilePath = v.GetString("FILE_STATE_PATH")

	log.Debug().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
