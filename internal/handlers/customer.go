package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"artisanalley/web/internal/backend"
	"artisanalley/web/internal/middleware"
	"artisanalley/web/internal/view"
)

// CustomerHome renders the customer landing page. The page swaps
// sub-views (dashboard, collection, product, tutorials) without
// leaving the route; the ?view and ?product parameters drive the
// state machine.
func (h HandlerSet) CustomerHome(c *gin.Context) {
	page := view.Resolve(c.Query("view"), c.Query("product"))
	data := gin.H{
		"Title": "Your Dashboard",
		"View":  page.State.String(),
	}

	if msg := c.Query("notice"); msg != "" {
		data["Notice"] = msg
	}
	if msg := c.Query("error"); msg != "" {
		data["Error"] = msg
	}

	switch page.State {
	case view.StateDashboard:
		if trending, err := h.catalog.Trending(c.Request.Context()); err == nil {
			data["Trending"] = trending
		}

	case view.StateCollection:
		data["Collection"] = page.Collection
		products, err := h.backend.Products(c.Request.Context())
		if err != nil {
			if h.expireSession(c, err) {
				return
			}
			data["Error"] = backend.UserMessage(err, "Products could not be loaded.")
			break
		}
		data["Products"] = filterByCollection(products, page.Collection)

	case view.StateProduct:
		product, err := h.backend.Product(c.Request.Context(), page.ProductID)
		if err != nil {
			data["Error"] = backend.UserMessage(err, "Product not found.")
			data["View"] = view.StateDashboard.String()
			break
		}
		data["Product"] = product

	case view.StateTutorials:
		// Static content; nothing to fetch.
	}

	h.render(c, http.StatusOK, "customer_home.html", data)
}

// BuyProduct submits a purchase. Business failures from the backend
// (out of stock and friends) come back as a message on the dashboard.
func (h HandlerSet) BuyProduct(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	id := c.Param("id")

	if err := h.backend.BuyProduct(c.Request.Context(), sess.Token, id); err != nil {
		if h.expireSession(c, err) {
			return
		}
		msg := backend.UserMessage(err, "Purchase failed. Please try again.")
		c.Redirect(http.StatusSeeOther, "/customer-home?view=product&product="+
			url.QueryEscape(id)+"&error="+url.QueryEscape(msg))
		return
	}

	c.Redirect(http.StatusSeeOther, "/customer-home?notice="+
		url.QueryEscape("Purchase confirmed. The seller will be in touch."))
}

func filterByCollection(products []backend.Product, collection string) []backend.Product {
	if collection == "" || collection == view.CollectionAll {
		return products
	}
	filtered := make([]backend.Product, 0, len(products))
	for _, p := range products {
		if strings.EqualFold(p.Category, collection) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
