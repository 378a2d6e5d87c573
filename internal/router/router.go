package router

import (
	"github.com/gin-gonic/gin"
	"github.com/jlin/peacepet-backend/config"
	"github.com/jlin/peacepet-backend/internal/app/controller"
	"github.com/jlin/peacepet-backend/internal/app/repository"
	"github.com/jlin/peacepet-backend/internal/middleware"
)

type Router struct {
	catalogController *controller.CatalogController
	orderController   *controller.OrderController
	authController    *controller.AuthController
	adminController   *controller.AdminController
	adminMiddleware   *middleware.AdminMiddleware
	categoryRepo      repository.CategoryRepository
	settingRepo       repository.SettingRepository
	config            *config.Config
}

func NewRouter(
	catalogController *controller.CatalogController,
	orderController *controller.OrderController,
	authController *controller.AuthController,
	adminController *controller.AdminController,
	adminMiddleware *middleware.AdminMiddleware,
	categoryRepo repository.CategoryRepository,
	settingRepo repository.SettingRepository,
	cfg *config.Config,
) *Router {
	return &Router{
		catalogController: catalogController,
		orderController:   orderController,
		authController:    authController,
		adminController:   adminController,
		adminMiddleware:   adminMiddleware,
		categoryRepo:      categoryRepo,
		settingRepo:       settingRepo,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SiteContext(r.categoryRepo, r.settingRepo))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "PEACEPET CMS is running",
		})
	})

	// Public storefront
	router.GET("/", r.catalogController.Home)
	router.GET("/about", r.catalogController.About)
	router.GET("/catalog", r.catalogController.CatalogIndex)
	router.GET("/catalog/:slug", r.catalogController.CategoryDetail)
	router.GET("/product/:id", r.catalogController.ProductDetail)
	router.GET("/deals", r.catalogController.Deals)
	router.GET("/new-arrivals", r.catalogController.NewArrivals)
	router.GET("/switch-lang/:lang", r.catalogController.SwitchLanguage)
	router.POST("/submit-order", r.orderController.Submit)

	// Admin auth is the only unguarded admin surface
	router.GET("/admin/login", r.authController.ShowLogin)
	router.POST("/admin/login", r.authController.Login)
	router.GET("/admin/logout", r.authController.Logout)

	admin := router.Group("/admin")
	admin.Use(r.adminMiddleware.RequireAdmin())
	{
		admin.GET("", r.adminController.Dashboard)
		admin.POST("", r.adminController.Mutate)
		admin.GET("/edit-product/:id", r.adminController.EditProductForm)
		admin.POST("/edit-product/:id", r.adminController.EditProduct)
		admin.GET("/edit-category/:id", r.adminController.EditCategoryForm)
		admin.POST("/edit-category/:id", r.adminController.EditCategory)
		admin.GET("/delete-product/:id", r.adminController.DeleteProduct)
		admin.GET("/delete-category/:id", r.adminController.DeleteCategory)
		admin.GET("/orders/export", r.orderController.Export)
	}

	return router
}
