package router

import (
	"net/http"
	"testing"

	"yirestaurant/config"
	"yirestaurant/controllers"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitRejectsBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var cfg config.Configuration
	cfg.Admin.Username = testUser
	cfg.Admin.Password = testPass
	cfg.RateLimit.RPS = 0.001
	cfg.RateLimit.Burst = 1

	store := newSpyStore()
	log := zerolog.Nop()
	r := gin.New()
	r.LoadHTMLGlob("../templates/*.html")
	Initialize(r, controllers.New(store, cfg), cfg, &log)

	first := postForm(r, "/reservation", reservationForm(), false)
	assert.Equal(t, http.StatusSeeOther, first.Code)

	second := postForm(r, "/reservation", reservationForm(), false)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	// only the first submission reached the store
	list, err := store.List()
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRateLimitDisabled(t *testing.T) {
	handler := RateLimit(0, 0)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handler)
	r.POST("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 20; i++ {
		w := postForm(r, "/ping", nil, false)
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}
