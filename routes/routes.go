package routes

import (
	"github.com/phatapon77/food-backend/configs"
	"github.com/phatapon77/food-backend/controllers"
	"github.com/phatapon77/food-backend/middlewares"
	"github.com/phatapon77/food-backend/repository"
	"github.com/phatapon77/food-backend/services"
	"github.com/phatapon77/food-backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, feed *ws.OrderFeed) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartStore := repository.NewCartSnapshotRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(cartStore, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo)
	orderSvc.SetNotifier(feed.Publish) // แจ้งหน้า admin หลัง commit
	checkoutSvc := services.NewCheckoutService(cartStore, orderSvc, cfg.CheckoutTimeout, cfg.QRPaymentRef)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restRepo)
	menuCtrl := controllers.NewMenuController(menuRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	// Public
	r.POST("/register", authCtrl.Register)
	r.POST("/login", authCtrl.Login)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/menus", menuCtrl.List) // ?restaurant_id=

	// Cart + Checkout (ต้องล็อกอิน)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/increment", cartCtrl.Increment)
		u.PATCH("/cart/items/decrement", cartCtrl.Decrement)
		u.DELETE("/cart/items/:menuId", cartCtrl.RemoveItem)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/checkout", checkoutCtrl.Checkout)
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.GET("/profile/orders", orderCtrl.ListForMe)
	}

	// Admin
	admin := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/orders", orderCtrl.List)
		admin.PUT("/orders/:id/status", orderCtrl.SetStatus)

		admin.POST("/restaurants", restCtrl.Create)
		admin.DELETE("/restaurants/:id", restCtrl.Delete)
		admin.POST("/menus", menuCtrl.Create)
		admin.PUT("/menus/:id", menuCtrl.Update)
		admin.DELETE("/menus/:id", menuCtrl.Delete)

	}

	// WS feed สำหรับหน้า admin — token ผ่าน query ได้
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret, "admin"), feed.HandleWebSocket)
}
