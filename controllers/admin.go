package controllers

import (
	"errors"
	"net/http"
	"time"

	"yirestaurant/catalog"
	"yirestaurant/models"

	"github.com/gin-gonic/gin"
)

// GET /admin
func (ct *Controller) AdminIndex(c *gin.Context) {
	c.Redirect(http.StatusFound, "/admin/reservations")
}

// GET /admin/reservations
func (ct *Controller) AdminReservations(c *gin.Context) {
	reservations, err := ct.Store.List()
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "admin_reservations.html", gin.H{
		"lang":         catalog.Lang(c.DefaultQuery("lang", catalog.DefaultLang)),
		"restaurant":   catalog.Info,
		"reservations": reservations,
		"current_year": time.Now().Year(),
		"query_params": queryParams(c),
	})
}

// GET /admin/reservation/:id/edit
func (ct *Controller) AdminEditReservation(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	reservation, err := ct.Store.Get(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			RespondError(c, "reservation not found", http.StatusNotFound)
			return
		}
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "admin_edit_reservation.html", gin.H{
		"lang":         catalog.Lang(c.DefaultQuery("lang", catalog.DefaultLang)),
		"restaurant":   catalog.Info,
		"reservation":  reservation,
		"current_year": time.Now().Year(),
		"query_params": queryParams(c),
	})
}

// POST /admin/reservation/:id/edit
func (ct *Controller) AdminUpdateReservation(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var form ReservationForm
	if err := c.ShouldBind(&form); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	guests, msg := form.validate()
	if msg != "" {
		RespondError(c, msg, http.StatusBadRequest)
		return
	}

	fields := form.toReservation(guests)
	if err := ct.Store.Update(id, &fields); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			RespondError(c, "reservation not found", http.StatusNotFound)
			return
		}
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/reservations")
}

// POST /admin/reservation/:id/delete
func (ct *Controller) AdminDeleteReservation(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	if err := ct.Store.Delete(id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			RespondError(c, "reservation not found", http.StatusNotFound)
			return
		}
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/reservations")
}
