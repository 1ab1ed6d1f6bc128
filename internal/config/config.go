package config

import (
	"strings"

	"github.com/spf13/viper"
)

// AppName is used for export filenames and default paths.
const AppName = "academia-app"

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Backup   BackupConfig   `mapstructure:"backup"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// DatabaseConfig points at the embedded database file. There is no
// server to connect to; everything lives under the data directory.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// SyncConfig controls the offline sync queue and its replay target.
// RemoteURL may be empty for a fully local deployment, in which case
// mutations are not mirrored into the queue at all: there is no remote
// to replay them against.
type SyncConfig struct {
	RemoteURL       string `mapstructure:"remote_url"`
	QueuePath       string `mapstructure:"queue_path"`
	InitiallyOnline bool   `mapstructure:"initially_online"`
}

// BackupConfig controls snapshot backups: the local backup directory, an
// optional cron schedule for automatic exports, an optional drop
// directory watched for snapshots to import, and optional S3 upload.
type BackupConfig struct {
	Dir       string   `mapstructure:"dir"`
	Schedule  string   `mapstructure:"schedule"`
	ImportDir string   `mapstructure:"import_dir"`
	S3Enabled bool     `mapstructure:"s3_enabled"`
	S3        S3Config `mapstructure:"s3"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// LogConfig enables file logging with rotation when File is set.
type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	// Set the path to look for the config file in
	viper.AddConfigPath(path)
	// Set the name of the config file (without extension)
	viper.SetConfigName("config")
	// Set the type of the config file
	viper.SetConfigType("yaml")

	// --- Environment Variable Handling ---
	viper.AutomaticEnv()
	// Use replacer for nested keys e.g., server.address -> SERVER_ADDRESS
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// --- Set default values ---
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.path", "data/"+AppName+".db")
	viper.SetDefault("sync.queue_path", "data/sync-queue.json")
	viper.SetDefault("sync.initially_online", false)
	viper.SetDefault("backup.dir", "data/backups")
	viper.SetDefault("backup.s3_enabled", false)
	viper.SetDefault("backup.s3.use_ssl", true)
	viper.SetDefault("log.max_size_mb", 10)
	viper.SetDefault("log.max_backups", 3)
	viper.SetDefault("log.max_age_days", 28)

	// --- Read Config File ---
	err = viper.ReadInConfig()
	// If config file not found, continue (might rely solely on env vars).
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	// --- Unmarshal Config ---
	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
