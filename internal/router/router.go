package router

import (
	"parley/internal/handlers"
	"parley/internal/services"
	"parley/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, gdb *gorm.DB) {
	users := services.NewUserService(gdb)
	discussions := services.NewDiscussionService(gdb)
	comments := services.NewCommentService(gdb)

	cache := utils.NewCache(500)

	userHandler := handlers.NewUserHandler(users)
	discussionHandler := handlers.NewDiscussionHandler(discussions, comments, cache)
	commentHandler := handlers.NewCommentHandler(comments, cache)

	r.POST("/users", userHandler.Create)

	r.POST("/discussions", discussionHandler.Create)     // author_id query param
	r.GET("/discussions", discussionHandler.List)        // includes soft-deleted rows
	r.GET("/discussions/:id", discussionHandler.Detail)  // discussion + rendered comments
	r.PATCH("/discussions/:id", discussionHandler.Update)
	r.DELETE("/discussions/:id", discussionHandler.Delete)

	r.POST("/comments/discussion/:id", commentHandler.Create)
	r.GET("/comments/discussion/:id", commentHandler.List)
	r.PATCH("/comments/:id", commentHandler.Update)
	r.DELETE("/comments/:id", commentHandler.Delete)
}
