package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"yirestaurant/catalog"
	"yirestaurant/models"

	"github.com/gin-gonic/gin"
)

// ReservationForm carries the raw booking submission. Guests stays a
// string here so a non-numeric value is rejected explicitly instead of
// being swallowed by the binder.
type ReservationForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Phone   string `form:"phone"`
	Date    string `form:"date"`
	Time    string `form:"time"`
	Guests  string `form:"guests"`
	Message string `form:"message"`
	Lang    string `form:"lang"`
}

func (f *ReservationForm) validate() (int, string) {
	if f.Name == "" || f.Email == "" || f.Phone == "" || f.Date == "" || f.Time == "" || f.Guests == "" {
		return 0, "name, email, phone, date, time and guests are required"
	}
	guests, err := strconv.Atoi(f.Guests)
	if err != nil {
		return 0, "guests must be a number"
	}
	return guests, ""
}

func (f *ReservationForm) toReservation(guests int) models.Reservation {
	lang := f.Lang
	if lang == "" {
		lang = catalog.DefaultLang
	}
	// stored verbatim: date and time stay free-form strings
	return models.Reservation{
		Name:    f.Name,
		Email:   f.Email,
		Phone:   f.Phone,
		Date:    f.Date,
		Time:    f.Time,
		Guests:  guests,
		Message: f.Message,
		Lang:    lang,
	}
}

// POST /reservation
func (ct *Controller) SubmitReservation(c *gin.Context) {
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

	res := form.toReservation(guests)
	if err := ct.Store.Create(&res); err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	// 303 so the browser re-issues as GET
	c.Redirect(http.StatusSeeOther, "/?lang="+url.QueryEscape(res.Lang)+"&reservation=success")
}
