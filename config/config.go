package config

import (
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Configuration struct {
	ApiPort  string `json:"api_port"`
	LogLevel string `json:"log_level"`

	Database string `json:"database"` // "sqlite3" or "postgres"
	DbPath   string `json:"db_path"`  // sqlite file
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	TemplatesGlob string `json:"templates_glob"`
	StaticDir     string `json:"static_dir"`

	Admin struct {
		Username string `json:"username"`
		Password string `json:"password"`
	} `json:"admin"`

	RateLimit struct {
		RPS   float64 `json:"rps"`
		Burst int     `json:"burst"`
	} `json:"rate_limit"`

	Backup struct {
		Enabled       bool   `json:"enabled"`
		Interval      string `json:"interval"` // Go duration, e.g. "24h"
		Dir           string `json:"dir"`
		RetentionDays int    `json:"retention_days"`
	} `json:"backup"`
}

// Get loads the JSON config file (optional), then applies environment
// overrides and defaults. A .env file next to the binary is picked up
// first so local runs can keep secrets out of the shell.
func Get(path string) Configuration {
	_ = godotenv.Load()

	var c Configuration
	if b, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(b, &c); err != nil {
			log.Fatal(err)
		}
	}

	// env wins over the file; admin credentials must be overridable this way
	if v := os.Getenv("PORT"); v != "" {
		c.ApiPort = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		c.DbPath = v
	}
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		c.Admin.Username = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		c.Admin.Password = v
	}

	// defaults (development only for the credentials)
	if c.ApiPort == "" {
		c.ApiPort = "8800"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.DbPath == "" {
		c.DbPath = "db/restaurant.db"
	}
	if c.TemplatesGlob == "" {
		c.TemplatesGlob = "templates/*.html"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.Admin.Username == "" {
		c.Admin.Username = "admin"
	}
	if c.Admin.Password == "" {
		c.Admin.Password = "password"
	}
	if c.Backup.Interval == "" {
		c.Backup.Interval = "24h"
	}
	if c.Backup.Dir == "" {
		c.Backup.Dir = "backups"
	}
	if c.Backup.RetentionDays <= 0 {
		c.Backup.RetentionDays = 7
	}

	return c
}
