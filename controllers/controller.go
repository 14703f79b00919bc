package controllers

import (
	"yirestaurant/config"
	"yirestaurant/models"

	"github.com/gin-gonic/gin"
)

// Controller bundles what every handler needs: the reservation store and
// the loaded configuration. Both are fixed at construction, so tests can
// swap in a fake store without touching globals.
type Controller struct {
	Store models.ReservationStore
	Cfg   config.Configuration
}

func New(store models.ReservationStore, cfg config.Configuration) *Controller {
	return &Controller{Store: store, Cfg: cfg}
}

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}
