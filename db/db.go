package db

import (
	"os"
	"path/filepath"

	"yirestaurant/config"
	"yirestaurant/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

// Connect opens the configured database (sqlite3 by default) and migrates
// the reservations table. GORM pools connections, so one handle is shared
// by every request and each operation checks a connection out and back in.
func Connect(cfg config.Configuration) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if cfg.Database == "postgres" || cfg.Database == "postgresql" {
		path := "host=" + cfg.DbHost + " port=" + cfg.DbPort
		path += " user=" + cfg.DbUser + " dbname=" + cfg.DbName
		path += " password=" + cfg.DbPass
		db, err = gorm.Open("postgres", path)
	} else {
		if dir := filepath.Dir(cfg.DbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		db, err = gorm.Open("sqlite3", cfg.DbPath)
	}
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Reservation{}).Error; err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
