package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"artisanalley/web/internal/backend"
	"artisanalley/web/internal/middleware"
)

func (h HandlerSet) SellerHome(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	data := gin.H{"Title": "Seller Dashboard"}

	if msg := c.Query("notice"); msg != "" {
		data["Notice"] = msg
	}
	if msg := c.Query("error"); msg != "" {
		data["Error"] = msg
	}

	products, err := h.backend.MyProducts(c.Request.Context(), sess.Token)
	if err != nil {
		if h.expireSession(c, err) {
			return
		}
		data["Error"] = backend.UserMessage(err, "Your products could not be loaded.")
	} else {
		data["Products"] = products
	}

	h.render(c, http.StatusOK, "seller_home.html", data)
}

func (h HandlerSet) SellerShop(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	data := gin.H{"Title": "My Shop"}

	products, err := h.backend.MyProducts(c.Request.Context(), sess.Token)
	if err != nil {
		if h.expireSession(c, err) {
			return
		}
		data["Error"] = backend.UserMessage(err, "Your products could not be loaded.")
	} else {
		data["Products"] = products
	}

	h.render(c, http.StatusOK, "seller_shop.html", data)
}

func (h HandlerSet) WaitingApproval(c *gin.Context) {
	h.render(c, http.StatusOK, "waiting_approval.html", gin.H{
		"Title": "Awaiting approval",
	})
}

func (h HandlerSet) AddProductForm(c *gin.Context) {
	data := gin.H{"Title": "Add product"}
	if categories, err := h.catalog.Categories(c.Request.Context()); err == nil {
		data["Categories"] = categories
	}
	h.render(c, http.StatusOK, "add_product.html", data)
}

func (h HandlerSet) AddProduct(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	input, formErr := productInputFromForm(c)
	if formErr != "" {
		h.renderProductForm(c, "add_product.html", "Add product", input, formErr)
		return
	}

	if err := h.backend.CreateProduct(c.Request.Context(), sess.Token, input); err != nil {
		if h.expireSession(c, err) {
			return
		}
		h.renderProductForm(c, "add_product.html", "Add product", input,
			backend.UserMessage(err, "The product could not be created."))
		return
	}

	c.Redirect(http.StatusSeeOther, "/seller-home?notice="+url.QueryEscape("Product created."))
}

func (h HandlerSet) EditProductForm(c *gin.Context) {
	id := c.Param("id")
	product, err := h.backend.Product(c.Request.Context(), id)
	if err != nil {
		if h.expireSession(c, err) {
			return
		}
		c.Redirect(http.StatusSeeOther, "/seller-home?error="+
			url.QueryEscape(backend.UserMessage(err, "Product not found.")))
		return
	}

	data := gin.H{
		"Title":   "Edit product",
		"Product": product,
	}
	if categories, err := h.catalog.Categories(c.Request.Context()); err == nil {
		data["Categories"] = categories
	}
	h.render(c, http.StatusOK, "edit_product.html", data)
}

func (h HandlerSet) EditProduct(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	id := c.Param("id")

	input, formErr := productInputFromForm(c)
	if formErr != "" {
		h.renderProductForm(c, "edit_product.html", "Edit product", input, formErr)
		return
	}

	if err := h.backend.UpdateProduct(c.Request.Context(), sess.Token, id, input); err != nil {
		if h.expireSession(c, err) {
			return
		}
		h.renderProductForm(c, "edit_product.html", "Edit product", input,
			backend.UserMessage(err, "The product could not be updated."))
		return
	}

	c.Redirect(http.StatusSeeOther, "/seller-home?notice="+url.QueryEscape("Product updated."))
}

func (h HandlerSet) DeleteProduct(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	id := c.Param("id")

	if err := h.backend.DeleteProduct(c.Request.Context(), sess.Token, id); err != nil {
		if h.expireSession(c, err) {
			return
		}
		c.Redirect(http.StatusSeeOther, "/seller-home?error="+
			url.QueryEscape(backend.UserMessage(err, "The product could not be deleted.")))
		return
	}

	c.Redirect(http.StatusSeeOther, "/seller-home?notice="+url.QueryEscape("Product deleted."))
}

func productInputFromForm(c *gin.Context) (backend.ProductInput, string) {
	input := backend.ProductInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		CategoryID:  c.PostForm("category_id"),
		ImageURL:    c.PostForm("image_url"),
	}

	if input.Name == "" {
		return input, "A product name is required."
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		return input, "Price must be a non-negative number."
	}
	input.Price = price

	stock, err := strconv.Atoi(c.DefaultPostForm("stock", "0"))
	if err != nil || stock < 0 {
		return input, "Stock must be a non-negative whole number."
	}
	input.Stock = stock

	return input, ""
}

func (h HandlerSet) renderProductForm(c *gin.Context, template, title string, input backend.ProductInput, errMsg string) {
	data := gin.H{
		"Title": title,
		"Error": errMsg,
		"Input": input,
	}
	if categories, err := h.catalog.Categories(c.Request.Context()); err == nil {
		data["Categories"] = categories
	}
	h.render(c, http.StatusBadRequest, template, data)
}
