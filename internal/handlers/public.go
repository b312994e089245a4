package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artisanalley/web/internal/backend"
)

func (h HandlerSet) Home(c *gin.Context) {
	data := gin.H{"Title": "Artisan Alley"}

	if msg := c.Query("error"); msg != "" {
		data["Error"] = msg
	}

	trending, err := h.catalog.Trending(c.Request.Context())
	if err != nil {
		h.log.Warn().Err(err).Msg("trending unavailable for home page")
		data["TrendingError"] = backend.UserMessage(err, "Trending products are unavailable right now.")
	} else {
		data["Trending"] = trending
	}

	h.render(c, http.StatusOK, "home.html", data)
}

func (h HandlerSet) Shop(c *gin.Context) {
	data := gin.H{"Title": "Shop"}

	products, err := h.backend.Products(c.Request.Context())
	if err != nil {
		data["Error"] = backend.UserMessage(err, "Products could not be loaded.")
		h.render(c, http.StatusOK, "shop.html", data)
		return
	}
	data["Products"] = products

	if categories, err := h.catalog.Categories(c.Request.Context()); err == nil {
		data["Categories"] = categories
	}

	h.render(c, http.StatusOK, "shop.html", data)
}

func (h HandlerSet) ProductDetail(c *gin.Context) {
	product, err := h.backend.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.render(c, http.StatusOK, "shop.html", gin.H{
			"Title": "Shop",
			"Error": backend.UserMessage(err, "Product not found."),
		})
		return
	}

	h.render(c, http.StatusOK, "product.html", gin.H{
		"Title":   product.Name,
		"Product": product,
	})
}

func (h HandlerSet) staticPage(title, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.render(c, http.StatusOK, "static_page.html", gin.H{
			"Title":   title,
			"Message": message,
		})
	}
}

func (h HandlerSet) Unauthorized(c *gin.Context) {
	h.render(c, http.StatusForbidden, "unauthorized.html", gin.H{
		"Title": "Not allowed",
	})
}
