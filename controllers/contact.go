package controllers

import (
	"net/http"
	"net/url"

	"yirestaurant/catalog"

	"github.com/gin-gonic/gin"
)

type ContactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Subject string `form:"subject"`
	Message string `form:"message"`
	Lang    string `form:"lang"`
}

// POST /contact-form
func (ct *Controller) SubmitContactForm(c *gin.Context) {
	var form ContactForm
	if err := c.ShouldBind(&form); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if form.Name == "" || form.Email == "" || form.Subject == "" || form.Message == "" {
		RespondError(c, "name, email, subject and message are required", http.StatusBadRequest)
		return
	}

	lang := form.Lang
	if lang == "" {
		lang = catalog.DefaultLang
	}

	// TODO: contact messages are accepted but go nowhere; persist or
	// forward them once the restaurant decides on a mailbox.
	c.Redirect(http.StatusSeeOther, "/contact?lang="+url.QueryEscape(lang)+"&message=sent")
}
