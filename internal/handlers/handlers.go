package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"artisanalley/web/internal/backend"
	"artisanalley/web/internal/catalog"
	"artisanalley/web/internal/config"
	"artisanalley/web/internal/middleware"
	"artisanalley/web/internal/session"
)

type HandlerSet struct {
	log     zerolog.Logger
	cfg     *config.AppConfig
	backend *backend.Client
	catalog *catalog.Cache
	store   *session.Store
}

func NewHandlerSet(log zerolog.Logger, cfg *config.AppConfig, backendClient *backend.Client, catalogCache *catalog.Cache, store *session.Store) HandlerSet {
	return HandlerSet{
		log:     log,
		cfg:     cfg,
		backend: backendClient,
		catalog: catalogCache,
		store:   store,
	}
}

// Register lays out the route table: public pages, session-only
// onboarding, and the three role-gated subtrees.
func (h HandlerSet) Register(engine *gin.Engine) {
	engine.GET("/healthz", h.Health)

	engine.GET("/", h.Home)
	engine.GET("/shop", h.Shop)
	engine.GET("/shop/product/:id", h.ProductDetail)
	engine.GET("/collections", h.staticPage("Collections", "Collections Page Coming Soon"))
	engine.GET("/about", h.staticPage("About", "About Page Coming Soon"))
	engine.GET("/contact", h.staticPage("Contact", "Contact Page Coming Soon"))
	engine.GET("/signup", h.SignupForm)
	engine.POST("/signup", h.Signup)
	engine.GET("/login", h.LoginForm)
	engine.POST("/login", h.Login)
	engine.POST("/logout", h.Logout)
	engine.GET("/unauthorized", h.Unauthorized)

	// Signed in, but role not chosen or profile incomplete.
	onboarding := engine.Group("/")
	onboarding.Use(middleware.RequireSession(h.store))
	onboarding.GET("/roles", h.RoleSelection)
	onboarding.GET("/setup-customer", h.SetupCustomerForm)
	onboarding.POST("/setup-customer", h.SetupCustomer)
	onboarding.GET("/setup-seller", h.SetupSellerForm)
	onboarding.POST("/setup-seller", h.SetupSeller)

	customer := engine.Group("/customer-home")
	customer.Use(middleware.RequireRoles(h.store, session.RoleCustomer))
	customer.GET("", h.CustomerHome)
	customer.POST("/buy/:id", h.BuyProduct)

	seller := engine.Group("/")
	seller.Use(middleware.RequireRoles(h.store, session.RoleSeller))
	seller.GET("/seller-home", h.SellerHome)
	seller.GET("/seller-home/shop", h.SellerShop)
	seller.GET("/seller-home/add-product", h.AddProductForm)
	seller.POST("/seller-home/add-product", h.AddProduct)
	seller.GET("/seller-home/edit-product/:id", h.EditProductForm)
	seller.POST("/seller-home/edit-product/:id", h.EditProduct)
	seller.POST("/seller-home/delete-product/:id", h.DeleteProduct)
	seller.GET("/waiting-approval", h.WaitingApproval)

	contentAdmin := engine.Group("/contentadmin-dashboard")
	contentAdmin.Use(middleware.RequireRoles(h.store, session.RoleContentAdmin))
	contentAdmin.GET("", h.ContentAdminDashboard)

	admin := engine.Group("/")
	admin.Use(middleware.RequireRoles(h.store, session.RolePlatformAdmin))
	admin.GET("/platformadmin-dashboard", h.AdminDashboard)
	admin.GET("/users", h.adminSection("User Monitoring"))
	admin.GET("/sellers", h.adminSection("Seller Management"))
	admin.GET("/admins", h.adminSection("Admin Management"))
	admin.GET("/reports", h.adminSection("Reports"))
	admin.GET("/logs", h.adminSection("System Logs"))
	admin.GET("/sellers-approval", h.SellerApproval)
	admin.POST("/sellers-approval/approve/:id", h.ApproveSeller)
	admin.POST("/sellers-approval/reject/:id", h.RejectSeller)
}

// render wraps c.HTML so every page sees the current session for the
// navigation bar.
func (h HandlerSet) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Session"]; !ok {
		data["Session"] = h.store.Load(c)
	}
	c.HTML(status, name, data)
}

// expireSession handles a backend 401/403 mid-session: the token is
// dead, so the session is cleared and the user restarts at login.
// Returns true when the error was consumed.
func (h HandlerSet) expireSession(c *gin.Context, err error) bool {
	if !errors.Is(err, backend.ErrUnauthorized) {
		return false
	}
	h.store.Logout(c)
	c.Redirect(http.StatusFound, session.PathLogin)
	return true
}

func (h HandlerSet) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"environment": h.cfg.Environment,
	})
}
