package routes

import (
	"maxcleaners/controllers"
	"maxcleaners/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := controllers.NewAuthController()
	availabilityCtrl := controllers.NewAvailabilityController()
	orderCtrl := controllers.NewOrderController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/signup", authCtrl.Signup)
	router.POST("/signin", authCtrl.Signin)
	router.POST("/signout", authCtrl.Signout)
	router.GET("/checkAddressAvailability", availabilityCtrl.CheckAddressAvailability)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/createOrder", orderCtrl.CreateOrder)
		auth.GET("/getOrder/:orderId", orderCtrl.GetOrder)
	}

	admin := router.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.PUT("/updateOrder/:orderId", orderCtrl.UpdateOrder)
		// Path spelling kept for client compatibility.
		admin.GET("/retriveOrders", orderCtrl.RetrieveOrders)
	}
}
