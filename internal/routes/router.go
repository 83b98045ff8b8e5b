package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/handlers"
	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/middleware"
)

func NewRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	authH := handlers.NewAuthHandler(db)
	userH := handlers.NewUserHandler(db)
	attH := handlers.NewAttendanceHandler(db)
	locH := handlers.NewLocationHandler(db)
	repH := handlers.NewReportHandler(db)
	invH := handlers.NewInviteHandler(db)

	r.GET("/health", handlers.Health)

	api := r.Group("/api/v1")
	{
		api.POST("/auth/register", authH.Register)
		api.POST("/auth/login", authH.Login)
		api.POST("/auth/totp/setup", middleware.AuthRequired(), authH.SetupTOTP)
		api.POST("/auth/totp/verify", middleware.AuthRequired(), authH.VerifyTOTP)
	}

	auth := api.Group("")
	auth.Use(middleware.AuthRequired())
	{
		auth.POST("/users", userH.Create)
		auth.GET("/users", userH.List)
		auth.GET("/users/me", userH.Me)
		auth.GET("/users/:id", userH.GetByID)
		auth.POST("/users/reset-password", userH.ResetPassword)
		auth.POST("/users/:id/block", userH.Block)
		auth.POST("/users/:id/unblock", userH.Unblock)
		auth.POST("/users/sweep-expired", userH.SweepExpired)

		auth.POST("/attendance", attH.RecordScan)
		auth.GET("/attendance", attH.List)
		auth.GET("/attendance/user/:id", attH.ListByUser)

		auth.POST("/locations", locH.Create)
		auth.GET("/locations", locH.List)
		auth.GET("/locations/:id", locH.GetByID)
		auth.GET("/locations/:id/qrcode", locH.QRCode)

		auth.POST("/reports", repH.Create)
		auth.GET("/reports", repH.List)
		auth.GET("/reports/:id", repH.GetByID)

		auth.POST("/invites", invH.Create)
		auth.GET("/invites", invH.List)
	}

	return r
}
