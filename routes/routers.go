package routes

import (
	"github.com/Samoo1234/HotelCosta-sub001/controllers"
	middlewares "github.com/Samoo1234/HotelCosta-sub001/middleware"
	"github.com/Samoo1234/HotelCosta-sub001/models"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	controllers.SetWebSocketHub(m)

	router.Use(middlewares.SessionMiddleware())

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/register", middlewares.AuthMiddleware(models.RoleAdmin), controllers.Register)

	v1.GET("/rooms", middlewares.AuthMiddleware(), controllers.GetRooms)
	v1.GET("/rooms/available", middlewares.AuthMiddleware(), controllers.GetAvailableRooms)
	v1.GET("/rooms/:id", middlewares.AuthMiddleware(), controllers.GetRoomDetail)
	v1.POST("/rooms", middlewares.AuthMiddleware(models.RoleAdmin), controllers.CreateRoom)
	v1.PUT("/rooms", middlewares.AuthMiddleware(models.RoleAdmin), controllers.UpdateRoom)
	v1.PUT("/roomStatus", middlewares.AuthMiddleware(), controllers.ChangeRoomStatus)
	v1.DELETE("/rooms/:id", middlewares.AuthMiddleware(models.RoleAdmin), controllers.DeleteRoom)

	v1.GET("/guests", middlewares.AuthMiddleware(), controllers.GetGuests)
	v1.GET("/guests/search", middlewares.AuthMiddleware(), controllers.SearchGuestsByName)
	v1.GET("/guests/:id", middlewares.AuthMiddleware(), controllers.GetGuestDetail)
	v1.POST("/guests", middlewares.AuthMiddleware(), controllers.CreateGuest)
	v1.PUT("/guests", middlewares.AuthMiddleware(), controllers.UpdateGuest)
	v1.DELETE("/guests/:id", middlewares.AuthMiddleware(models.RoleAdmin), controllers.DeleteGuest)

	v1.GET("/reservations", middlewares.AuthMiddleware(), controllers.GetReservations)
	v1.GET("/reservations/:id", middlewares.AuthMiddleware(), controllers.GetReservationDetail)
	v1.POST("/reservations", middlewares.AuthMiddleware(), controllers.CreateReservation)
	v1.PUT("/reservations", middlewares.AuthMiddleware(), controllers.UpdateReservation)
	v1.PUT("/reservationStatus", middlewares.AuthMiddleware(), controllers.ChangeReservationStatus)
	v1.POST("/reservations/quote", middlewares.AuthMiddleware(), controllers.QuoteStay)
	v1.DELETE("/reservations/:id", middlewares.AuthMiddleware(models.RoleAdmin), controllers.DeleteReservation)
	v1.GET("/reservations/:id/consumptions", middlewares.AuthMiddleware(), controllers.GetConsumptions)

	v1.GET("/payments", middlewares.AuthMiddleware(), controllers.GetPayments)
	v1.POST("/payments", middlewares.AuthMiddleware(), controllers.CreatePayment)
	v1.PUT("/payments/:id/refund", middlewares.AuthMiddleware(models.RoleAdmin), controllers.RefundPayment)

	v1.GET("/products", middlewares.AuthMiddleware(), controllers.GetProducts)
	v1.POST("/products", middlewares.AuthMiddleware(models.RoleAdmin), controllers.CreateProduct)
	v1.PUT("/products", middlewares.AuthMiddleware(models.RoleAdmin), controllers.UpdateProduct)
	v1.DELETE("/products/:id", middlewares.AuthMiddleware(models.RoleAdmin), controllers.DeleteProduct)

	v1.POST("/consumptions", middlewares.AuthMiddleware(), controllers.CreateConsumption)
	v1.DELETE("/consumptions/:id", middlewares.AuthMiddleware(), controllers.DeleteConsumption)

	v1.GET("/reports/revenue", middlewares.AuthMiddleware(models.RoleAdmin), controllers.GetRevenueReport)
	v1.GET("/reports/occupancy", middlewares.AuthMiddleware(), controllers.GetOccupancyReport)

	v1.GET("/settings", middlewares.AuthMiddleware(), controllers.GetSettings)
	v1.PUT("/settings", middlewares.AuthMiddleware(models.RoleAdmin), controllers.UpdateSettings)
}
