package routes

import (
	"net/http"

	"github.com/Anubhavy999/engineering-resource-mgmt/constants"
	"github.com/Anubhavy999/engineering-resource-mgmt/controllers"
	"github.com/Anubhavy999/engineering-resource-mgmt/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	authController := controllers.AuthController{DB: db}
	userController := controllers.UserController{DB: db}
	projectController := controllers.ProjectController{DB: db}
	taskController := controllers.TaskController{DB: db}
	assignmentController := controllers.AssignmentController{DB: db}
	managerController := controllers.ManagerController{DB: db}
	notificationController := controllers.NotificationController{DB: db}

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running")
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)

	requireAuth := middleware.AuthMiddleware()
	requireManager := middleware.RoleMiddleware(db, constants.RoleManager)
	requireEngineer := middleware.RoleMiddleware(db, constants.RoleEngineer)

	users := api.Group("/users", requireAuth)
	users.GET("", requireManager, userController.GetUsers)
	users.GET("/engineers", requireManager, userController.GetEngineers)
	users.GET("/me", userController.GetMe)
	users.PATCH("/me", userController.UpdateMe)
	users.DELETE("/me", userController.DeleteMe)
	users.POST("/me/avatar", userController.UpdateAvatar)
	users.POST("/me/change-password", userController.ChangePassword)
	users.PUT("/:id/role", requireManager, userController.UpdateRole)
	users.PUT("/:id", requireManager, userController.UpdateUser)
	users.DELETE("/:id", requireManager, userController.DeleteUser)

	projects := api.Group("/projects")
	projects.GET("", projectController.List)
	projects.POST("", requireAuth, requireManager, projectController.Create)
	projects.GET("/assigned", requireAuth, requireEngineer, projectController.ListAssigned)
	projects.GET("/:id", requireAuth, projectController.Get)
	projects.PUT("/:id", requireAuth, requireManager, projectController.Update)
	projects.DELETE("/:id", requireAuth, requireManager, projectController.Delete)
	projects.POST("/:id/close", requireAuth, requireManager, projectController.Close)
	projects.POST("/:id/reopen", requireAuth, requireManager, projectController.Reopen)
	projects.POST("/:id/tasks", requireAuth, requireManager, taskController.Add)

	tasks := projects.Group("/tasks", requireAuth)
	tasks.PUT("/:taskId/assign", requireManager, taskController.Assign)
	tasks.PUT("/:taskId/status", taskController.UpdateStatus)
	tasks.POST("/:taskId/request-completion", requireEngineer, taskController.RequestCompletion)
	tasks.POST("/:taskId/approve-completion", requireManager, taskController.ApproveCompletion)
	tasks.POST("/:taskId/reject-completion", requireManager, taskController.RejectCompletion)
	tasks.POST("/:taskId/comments", requireManager, taskController.AddComment)
	tasks.GET("/:taskId/comments", taskController.GetComments)
	tasks.GET("/:taskId/comments/count", taskController.CountComments)
	tasks.DELETE("/:taskId/comments", requireManager, taskController.DeleteComments)

	assignments := api.Group("/assignments", requireAuth)
	assignments.POST("", requireManager, assignmentController.Create)
	assignments.GET("", assignmentController.List)
	assignments.DELETE("/:id", requireManager, assignmentController.Delete)

	manager := api.Group("/manager", requireAuth, requireManager)
	manager.GET("/summary", managerController.Summary)

	analytics := api.Group("/analytics", requireAuth, requireManager)
	analytics.GET("/engineer-capacity", managerController.EngineerCapacity)

	notifications := api.Group("/notifications", requireAuth)
	notifications.GET("", notificationController.List)
	notifications.POST("/mark-read", notificationController.MarkRead)
	notifications.DELETE("/clear-read", notificationController.ClearRead)

	return r
}
