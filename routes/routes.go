package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/charlietlyons/VitaTrack-API/controllers"
	"github.com/charlietlyons/VitaTrack-API/middlewares"
	"github.com/charlietlyons/VitaTrack-API/utils"
)

func SetupRouter(
	users *controllers.UserController,
	foods *controllers.FoodController,
	intakes *controllers.IntakeController,
	tokens *utils.TokenIssuer,
) *gin.Engine {
	r := gin.Default()

	// TODO: restrict CORS to the app origin before shipping
	r.Use(cors.Default())

	// Public routes
	r.GET("/health-check", controllers.HealthCheck)
	r.POST("/register-user", users.Register)
	r.POST("/verify-user", users.VerifyUser)
	r.POST("/verify-token", users.VerifyToken)

	// Protected routes
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware(tokens))
	{
		auth.GET("/account-details", users.AccountDetails)
		auth.PUT("/update-user", users.UpdateUser)
		auth.GET("/reset-users", users.ResetUsers)

		auth.GET("/food", foods.GetFood)
		auth.POST("/food", foods.AddFood)
		auth.PATCH("/food", foods.UpdateFood)
		auth.DELETE("/food/:id", foods.DeleteFood)

		auth.GET("/intake", intakes.GetIntake)
		auth.POST("/intake", intakes.AddIntake)
		auth.PATCH("/intake", intakes.UpdateIntake)
		auth.DELETE("/intake/:id", intakes.DeleteIntake)
	}

	return r
}
