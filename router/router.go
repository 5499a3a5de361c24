package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danuarta/pos-backend/controllers"
	"github.com/danuarta/pos-backend/middlewares"
	"github.com/danuarta/pos-backend/store"
	"github.com/danuarta/pos-backend/utils"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	// 50 requests per second per IP. Gin snapshots the handler chain at
	// registration time, so this must be added before any route.
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	st := store.NewGormStore(db)
	identity := utils.TokenIdentity{}

	orderCtrl := controllers.NewOrderController(st, identity)
	shiftCtrl := controllers.NewShiftController(st, identity)
	paymentCtrl := controllers.NewPaymentController(st, identity)
	userCtrl := controllers.NewUserController(st)
	catalogCtrl := controllers.NewCatalogController(st)
	eventsCtrl := controllers.NewEventsController(identity)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter for login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// POS endpoints own their method dispatch: the handler answers OPTIONS
	// preflight itself and turns any non-POST into a 400, so they are
	// registered for every method.
	r.Any("/add_item_to_order", orderCtrl.AddItemToOrder)
	r.Any("/create_order", orderCtrl.CreateOrder)
	r.Any("/cancel_order", orderCtrl.CancelOrder)
	r.Any("/close_order", orderCtrl.CloseOrder)
	r.Any("/open_shift", shiftCtrl.OpenShift)
	r.Any("/close_shift", shiftCtrl.CloseShift)
	r.Any("/record_payment", paymentCtrl.RecordPayment)
	r.Any("/void_item", orderCtrl.VoidItem)

	// Read-only lookups for the floor clients
	r.GET("/menu_items", catalogCtrl.ListMenuItems)
	r.GET("/tables", catalogCtrl.ListTables)

	// Live order/payment/shift events for dashboards
	r.GET("/ws", eventsCtrl.Stream)

	return r
}
