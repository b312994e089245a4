package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artisanalley/web/internal/backend"
	"artisanalley/web/internal/middleware"
	"artisanalley/web/internal/session"
)

func (h HandlerSet) RoleSelection(c *gin.Context) {
	h.render(c, http.StatusOK, "roles.html", gin.H{"Title": "Choose your role"})
}

func (h HandlerSet) SetupCustomerForm(c *gin.Context) {
	h.render(c, http.StatusOK, "setup_customer.html", gin.H{"Title": "Customer profile"})
}

func (h HandlerSet) SetupCustomer(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	input := backend.CustomerProfileInput{
		FullName: c.PostForm("full_name"),
		Address:  c.PostForm("address"),
		Phone:    c.PostForm("phone"),
	}

	if err := h.backend.SetupCustomer(c.Request.Context(), sess.Token, input); err != nil {
		if h.expireSession(c, err) {
			return
		}
		h.render(c, http.StatusBadRequest, "setup_customer.html", gin.H{
			"Title": "Customer profile",
			"Error": backend.UserMessage(err, "Could not save your profile."),
			"Input": input,
		})
		return
	}

	// The profile setup fixes the role; re-run the dispatch with it.
	profile := session.Profile{Role: session.RoleCustomer}
	if sess.Profile != nil {
		profile = *sess.Profile
		profile.Role = session.RoleCustomer
	}
	h.store.Login(c, sess.Token, profile)
	h.dispatch(c, profile)
}

func (h HandlerSet) SetupSellerForm(c *gin.Context) {
	h.render(c, http.StatusOK, "setup_seller.html", gin.H{"Title": "Seller profile"})
}

func (h HandlerSet) SetupSeller(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	input := backend.SellerProfileInput{
		ShopName:    c.PostForm("shop_name"),
		Description: c.PostForm("description"),
		Address:     c.PostForm("address"),
		Phone:       c.PostForm("phone"),
	}

	if err := h.backend.SetupSeller(c.Request.Context(), sess.Token, input); err != nil {
		if h.expireSession(c, err) {
			return
		}
		h.render(c, http.StatusBadRequest, "setup_seller.html", gin.H{
			"Title": "Seller profile",
			"Error": backend.UserMessage(err, "Could not save your shop profile."),
			"Input": input,
		})
		return
	}

	// A new seller starts unapproved and waits for the platform admin.
	profile := session.Profile{Role: session.RoleSeller}
	if sess.Profile != nil {
		profile = *sess.Profile
		profile.Role = session.RoleSeller
		profile.Approved = false
	}
	h.store.Login(c, sess.Token, profile)
	h.dispatch(c, profile)
}
