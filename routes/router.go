package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/meinwort/meinwort-go/config"
	_ "github.com/meinwort/meinwort-go/docs"
	"github.com/meinwort/meinwort-go/handlers"
	"github.com/meinwort/meinwort-go/middleware"
	"github.com/meinwort/meinwort-go/repositories"
	"github.com/meinwort/meinwort-go/services"
	"github.com/meinwort/meinwort-go/storage"
	"github.com/meinwort/meinwort-go/websocket"
)

func RegisterRoutes(r *gin.Engine, store storage.Store, catalog config.Catalog) {

	// init
	repos_instance := repositories.New()
	hub := websocket.NewHub()
	tracker := websocket.NewCountTracker()
	services_instance := services.New(repos_instance, store, hub, tracker)
	handlers_instance := handlers.New(services_instance, hub, tracker, catalog)
	authMiddleware := middleware.NewAuth(repos_instance)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// public
	r.POST("/register", handlers_instance.User.Register)
	r.POST("/login", handlers_instance.User.Login)
	r.POST("/logout", handlers_instance.User.Logout)
	r.GET("/catalog", handlers_instance.Catalog.GetCatalog)
	r.POST("/contact", handlers_instance.Contact.Submit)
	r.GET("/petitions", handlers_instance.Petition.ListPetitions)
	r.GET("/petitions/:id", handlers_instance.Petition.GetPetition)
	r.POST("/petitions/:id/sign", handlers_instance.Signature.Sign)
	r.GET("/petitions/:id/signatures/count", handlers_instance.Signature.Count)
	r.GET("/petitions/:id/comments", handlers_instance.Comment.ListComments)
	r.GET("/groups", handlers_instance.Group.ListGroups)
	r.GET("/groups/:id", handlers_instance.Group.GetGroup)
	r.GET("/groups/:id/members", handlers_instance.Group.ListMembers)
	r.GET("/groups/:id/petitions", handlers_instance.Group.GroupPetitions)
	r.GET("/ws/petitions/:id/signatures", handlers_instance.WS.SignatureFeed)
	r.GET("/ws/groups/:id/chat", handlers_instance.WS.ChatFeed)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		users := auth.Group("/users")
		{
			users.GET("/me", handlers_instance.User.Me)
			users.PUT("/me", handlers_instance.User.UpdateMe)
			users.DELETE("/me", handlers_instance.User.DeleteMe)
		}
		wizard := auth.Group("/wizard")
		{
			wizard.GET("/draft", handlers_instance.Wizard.GetDraft)
			wizard.PUT("/draft", handlers_instance.Wizard.SaveDraft)
			wizard.DELETE("/draft", handlers_instance.Wizard.DiscardDraft)
			wizard.POST("/next", handlers_instance.Wizard.NextStep)
			wizard.POST("/back", handlers_instance.Wizard.PrevStep)
			wizard.POST("/submit", handlers_instance.Wizard.Submit)
		}
		petitions := auth.Group("/petitions")
		{
			petitions.GET("/mine", handlers_instance.Petition.MyPetitions)
			petitions.GET("/saved", handlers_instance.Petition.SavedPetitions)
			petitions.GET("/:id/signatures", handlers_instance.Petition.ListSignatures)
			petitions.POST("/:id/save", handlers_instance.Petition.SavePetition)
			petitions.DELETE("/:id/save", handlers_instance.Petition.UnsavePetition)
			petitions.POST("/:id/comments", handlers_instance.Comment.AddComment)
		}
		auth.POST("/comments/:id/like", handlers_instance.Comment.LikeComment)
		auth.POST("/reports", handlers_instance.Comment.Report)
		groups := auth.Group("/groups")
		{
			groups.POST("", handlers_instance.Group.CreateGroup)
			groups.POST("/:id/join", handlers_instance.Group.JoinGroup)
			groups.POST("/:id/leave", handlers_instance.Group.LeaveGroup)
			groups.POST("/:id/petitions", handlers_instance.Group.AttachPetition)
			groups.POST("/:id/messages", handlers_instance.Group.PostMessage)
			groups.GET("/:id/messages", handlers_instance.Group.ListMessages)
		}
		moderation := auth.Group("/moderation")
		moderation.Use(authMiddleware.Moderator())
		{
			moderation.GET("/petitions", handlers_instance.Petition.PendingPetitions)
			moderation.POST("/petitions/:id/publish", handlers_instance.Petition.Publish)
			moderation.POST("/petitions/:id/reject", handlers_instance.Petition.Reject)
			moderation.POST("/petitions/:id/close", handlers_instance.Petition.Close)
			moderation.GET("/contact", handlers_instance.Contact.List)
			moderation.POST("/contact/:id/processed", handlers_instance.Contact.MarkProcessed)
		}
		admin := auth.Group("/admin")
		admin.Use(authMiddleware.Admin())
		{
			admin.GET("/stats", handlers_instance.Admin.Stats)
			admin.GET("/reports", handlers_instance.Admin.OpenReports)
			admin.GET("/audit/logs", handlers_instance.Admin.AuditLogs)
		}
	}
}
