package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ledgerflow/backend/internal/interfaces/http/handler"
)

// Handlers bundles every HTTP handler of the API
type Handlers struct {
	Health    *handler.HealthHandler
	Security  *handler.SecurityHandler
	Customers *handler.CustomerHandler
	Vendors   *handler.VendorHandler
	Invoices  *handler.InvoiceHandler
	Expenses  *handler.ExpenseHandler
	Payments  *handler.PaymentHandler
	Settings  *handler.SettingsHandler
	Dashboard *handler.DashboardHandler
}

// Guards are the middleware chains placed in front of route groups. Nil
// entries are skipped.
type Guards struct {
	// Auth protects the bookkeeping resources
	Auth gin.HandlerFunc
	// AuthRateLimit throttles the password and setup endpoints
	AuthRateLimit gin.HandlerFunc
}

func chain(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			out = append(out, h)
		}
	}
	return out
}

// crud is the standard list/get/create/update/delete resource
type crud interface {
	List(c *gin.Context)
	GetByID(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func resourceGroup(name, prefix string, h crud, guards Guards) *DomainGroup {
	return NewDomainGroup(name, prefix).
		Use(chain(guards.Auth)...).
		GET("", h.List).
		POST("", h.Create).
		GET("/:id", h.GetByID).
		PUT("/:id", h.Update).
		DELETE("/:id", h.Delete)
}

// Register mounts the whole API on r
func Register(r *Router, h Handlers, guards Guards) {
	limited := func(hf gin.HandlerFunc) []gin.HandlerFunc {
		return append(chain(guards.AuthRateLimit), hf)
	}
	authed := func(hf gin.HandlerFunc) []gin.HandlerFunc {
		return append(chain(guards.Auth), hf)
	}

	r.Register(NewDomainGroup("health", "/health").
		GET("", h.Health.Health).
		GET("/ready", h.Health.Ready))

	r.Register(NewDomainGroup("setup", "/setup").
		POST("", limited(h.Security.Setup)...))

	r.Register(NewDomainGroup("security", "/security").
		POST("/set-password", limited(h.Security.SetPassword)...).
		POST("/login", limited(h.Security.Login)...).
		POST("/change-password", limited(h.Security.ChangePassword)...).
		POST("/verify-token", h.Security.VerifyToken).
		GET("/settings", h.Security.GetSettings).
		POST("/settings", authed(h.Security.UpdateSettings)...).
		POST("/logout", authed(h.Security.Logout)...))

	r.Register(resourceGroup("customers", "/customers", h.Customers, guards))
	r.Register(resourceGroup("vendors", "/vendors", h.Vendors, guards))
	r.Register(resourceGroup("invoices", "/invoices", h.Invoices, guards))
	r.Register(resourceGroup("expenses", "/expenses", h.Expenses, guards))
	r.Register(resourceGroup("payments", "/payments", h.Payments, guards))

	r.Register(NewDomainGroup("dashboard", "/dashboard").
		Use(chain(guards.Auth)...).
		GET("", h.Dashboard.Get))

	settings := NewDomainGroup("settings", "").Use(chain(guards.Auth)...)
	settings.Group("company", "/company").
		GET("", h.Settings.GetCompany).
		POST("", h.Settings.SaveCompany)
	settings.Group("tax", "/tax-settings").
		GET("", h.Settings.GetTax).
		POST("", h.Settings.SaveTax)
	settings.Group("notification", "/notification-settings").
		GET("", h.Settings.GetNotification).
		POST("", h.Settings.SaveNotification)
	r.Register(settings)
}
