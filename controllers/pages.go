package controllers

import (
	"net/http"
	"time"

	"yirestaurant/catalog"

	"github.com/gin-gonic/gin"
)

// pageData assembles the common template payload for the public pages.
func pageData(c *gin.Context) gin.H {
	return gin.H{
		"lang":         catalog.Lang(c.DefaultQuery("lang", catalog.DefaultLang)),
		"restaurant":   catalog.Info,
		"days":         catalog.Days,
		"current_year": time.Now().Year(),
		"query_params": queryParams(c),
	}
}

// GET /
func (ct *Controller) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData(c))
}

// GET /menu
func (ct *Controller) Menu(c *gin.Context) {
	data := pageData(c)
	data["menu"] = catalog.Menu
	c.HTML(http.StatusOK, "menu.html", data)
}

// GET /about
func (ct *Controller) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", pageData(c))
}

// GET /contact
func (ct *Controller) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", pageData(c))
}

// GET /gallery
func (ct *Controller) Gallery(c *gin.Context) {
	c.HTML(http.StatusOK, "gallery.html", pageData(c))
}
