package main

import (
	"os"

	"yirestaurant/config"
	"yirestaurant/controllers"
	"yirestaurant/db"
	"yirestaurant/logging"
	"yirestaurant/metrics"
	"yirestaurant/router"
	"yirestaurant/workers"

	"github.com/gin-gonic/gin"
)

// =====================
// ENV overrides
// =====================
//
// - PORT             (default 8800)
// - DB_PATH          (sqlite file, default db/restaurant.db)
// - ADMIN_USERNAME   (default admin, development only)
// - ADMIN_PASSWORD   (default password, development only)
// - LOG_LEVEL        (default info)
// - CONFIG_PATH      (default config.json)
//
// =====================

func main() {
	cfg := config.Get(getenv("CONFIG_PATH", "config.json"))
	log := logging.New(cfg.LogLevel)

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	defer database.Close()

	metrics.Register()
	workers.StartBackup(cfg, &log)

	store := db.NewReservations(database)
	ct := controllers.New(store, cfg)

	r := gin.New()
	r.LoadHTMLGlob(cfg.TemplatesGlob)
	r.Static("/static", cfg.StaticDir)
	router.Initialize(r, ct, cfg, &log)

	log.Info().Str("port", cfg.ApiPort).Msg("listening")
	if err := r.Run(":" + cfg.ApiPort); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
