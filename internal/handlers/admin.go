package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"artisanalley/web/internal/backend"
	"artisanalley/web/internal/middleware"
)

func (h HandlerSet) AdminDashboard(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	data := gin.H{"Title": "Platform Admin"}

	pending, err := h.backend.PendingSellers(c.Request.Context(), sess.Token)
	if err != nil {
		if h.expireSession(c, err) {
			return
		}
		data["Error"] = backend.UserMessage(err, "Pending sellers could not be loaded.")
	} else {
		data["PendingCount"] = len(pending)
	}

	h.render(c, http.StatusOK, "admin_dashboard.html", data)
}

func (h HandlerSet) ContentAdminDashboard(c *gin.Context) {
	h.render(c, http.StatusOK, "admin_section.html", gin.H{
		"Title":   "Content Admin",
		"Section": "Content Dashboard",
	})
}

// adminSection renders the static platform-admin subsections (users,
// sellers, admins, reports, logs).
func (h HandlerSet) adminSection(section string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.render(c, http.StatusOK, "admin_section.html", gin.H{
			"Title":   section,
			"Section": section,
		})
	}
}

func (h HandlerSet) SellerApproval(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	data := gin.H{"Title": "Seller Approval"}

	if msg := c.Query("notice"); msg != "" {
		data["Notice"] = msg
	}
	if msg := c.Query("error"); msg != "" {
		data["Error"] = msg
	}

	pending, err := h.backend.PendingSellers(c.Request.Context(), sess.Token)
	if err != nil {
		if h.expireSession(c, err) {
			return
		}
		data["Error"] = backend.UserMessage(err, "Pending sellers could not be loaded.")
	} else {
		data["Pending"] = pending
	}

	h.render(c, http.StatusOK, "seller_approval.html", data)
}

func (h HandlerSet) ApproveSeller(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	id := c.Param("id")

	if err := h.backend.ApproveSeller(c.Request.Context(), sess.Token, id); err != nil {
		if h.expireSession(c, err) {
			return
		}
		c.Redirect(http.StatusSeeOther, "/sellers-approval?error="+
			url.QueryEscape(backend.UserMessage(err, "Approval failed.")))
		return
	}

	c.Redirect(http.StatusSeeOther, "/sellers-approval?notice="+url.QueryEscape("Seller approved."))
}

func (h HandlerSet) RejectSeller(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	id := c.Param("id")

	if err := h.backend.DeleteSeller(c.Request.Context(), sess.Token, id); err != nil {
		if h.expireSession(c, err) {
			return
		}
		c.Redirect(http.StatusSeeOther, "/sellers-approval?error="+
			url.QueryEscape(backend.UserMessage(err, "Rejection failed.")))
		return
	}

	c.Redirect(http.StatusSeeOther, "/sellers-approval?notice="+url.QueryEscape("Seller application removed."))
}
