package routes

import (
	"net/http"

	"github.com/IEarari/Seeds/configs"
	"github.com/IEarari/Seeds/controllers"
	"github.com/IEarari/Seeds/middlewares"
	"github.com/IEarari/Seeds/repository"
	"github.com/IEarari/Seeds/services"
	"github.com/IEarari/Seeds/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Allowed role sets, enumerated in full per endpoint group. Roles are flat:
// listing admin does not imply super_admin.
var (
	reviewRoles = []string{"review_admin", "admin", "super_admin"}
	adminRoles  = []string{"admin", "super_admin"}
	superRoles  = []string{"super_admin"}
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.StatusHub) {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// Services
	auditSvc := services.NewAuditService(auditRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	appSvc := services.NewApplicationService(db, appRepo, userRepo, settingsRepo, auditSvc)
	appSvc.Notifier = hub
	settingsSvc := services.NewSettingsService(settingsRepo, auditSvc)
	menuSvc := services.NewMenuService(menuRepo, auditSvc)
	roleSvc := services.NewRoleService(userRepo, auditSvc)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	appCtrl := controllers.NewApplicationController(appSvc)
	adminAppCtrl := controllers.NewAdminApplicationController(appSvc)
	settingsCtrl := controllers.NewSettingsController(settingsSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	roleCtrl := controllers.NewRoleController(roleSvc)

	authRequired := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(db, cfg.JWTSecret, roles...)
	}

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	// Public reads (no auth)
	api.GET("/public/settings/volunteering", settingsCtrl.Get)
	api.GET("/public/menus", menuCtrl.List)
	api.GET("/public/menus/:name", menuCtrl.Detail)

	// Auth
	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.GET("/me", authRequired(), authCtrl.Me)
	}

	// Applicant lifecycle (any authenticated role)
	apps := api.Group("/applications", authRequired())
	{
		apps.POST("/ensure-draft", appCtrl.EnsureDraft)
		apps.GET("/:id", appCtrl.Detail)
		apps.PUT("/:id", appCtrl.SaveDraft)
		apps.POST("/:id/submit", appCtrl.Submit)
	}

	// Reviewer queue
	review := api.Group("/admin/applications", authRequired(reviewRoles...))
	{
		review.GET("", adminAppCtrl.List)
		review.GET("/:id", adminAppCtrl.Detail)
		review.POST("/:id/approve", adminAppCtrl.Approve)
		review.POST("/:id/reject", adminAppCtrl.Reject)
	}

	// Admin: window settings, roles, user listing
	adm := api.Group("/admin", authRequired(adminRoles...))
	{
		adm.GET("/settings/volunteering", settingsCtrl.Get)
		adm.POST("/settings/volunteering", settingsCtrl.Set)
		adm.POST("/roles/assign", roleCtrl.Assign)
		adm.GET("/users", roleCtrl.ListUsers)
	}

	// Super admin: lookup list management
	super := api.Group("/super", authRequired(superRoles...))
	{
		super.GET("/menus", menuCtrl.List)
		super.GET("/menus/:name", menuCtrl.Detail)
		super.POST("/menus/:name", menuCtrl.Replace)
		super.POST("/menus/:name/items", menuCtrl.AddItem)
		super.DELETE("/menus/:name/items", menuCtrl.RemoveItem)
	}

	// Realtime application-status stream for the owning applicant
	r.GET("/ws/application-status", middlewares.WSAuthMiddleware(db, cfg.JWTSecret), hub.HandleWebSocket)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})
}
