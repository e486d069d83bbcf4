package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"curateurs-backoffice/internal/domain"
	"curateurs-backoffice/internal/middleware"
	"curateurs-backoffice/internal/service"
)

// RouterDeps are the collaborators served by the HTTP API.
type RouterDeps struct {
	Articles service.ArticleServiceInterface
	Users    service.UserServiceInterface
	Search   service.SearchServiceInterface
	Sessions middleware.SessionDecoder
	Health   *HealthHandler
}

// NewRouter wires the middleware chain and every route of the back office API.
func NewRouter(d RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.AccessLog())

	if d.Health != nil {
		router.GET("/health", d.Health.Health)
		router.GET("/ready", d.Health.Ready)
		router.GET("/live", d.Health.Live)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	articles := NewArticleHandler(d.Articles)
	users := NewUserHandler(d.Users)
	search := NewSearchHandler(d.Search)
	need := middleware.RequirePermission

	v1 := router.Group("/api/v1", middleware.Session(d.Sessions))
	{
		v1.GET("/menu", Menu)

		a := v1.Group("/articles")
		{
			a.GET("", need(domain.PermReadArticles), articles.List)
			a.POST("", need(domain.PermCreateArticles), articles.Create)
			a.GET("/:id", need(domain.PermReadArticles), articles.Get)
			a.PATCH("/:id", need(domain.PermUpdateArticles), articles.Update)
			a.PUT("/:id/validation", need(domain.PermValidateArticles), articles.SetValidation)
			a.PUT("/:id/shipping", need(domain.PermShipArticles), articles.SetShipping)
			a.PUT("/:id/deletion", need(domain.PermDeleteArticles), articles.SetDeletion)
		}

		s := v1.Group("/slugs", need(domain.PermReadArticles))
		{
			s.GET("", articles.ListSlugs)
			s.GET("/:slug/article", articles.GetBySlug)
		}

		q := v1.Group("/search", need(domain.PermReadArticles))
		{
			q.GET("/slugs", search.Slugs)
			q.GET("/articles/:id", search.Article)
		}

		u := v1.Group("/users")
		{
			u.GET("", need(domain.PermUpdateUser), users.List)
			u.POST("", need(domain.PermCreateUser), users.Create)
			u.PUT("/:id", need(domain.PermUpdateUser), users.Update)
			u.DELETE("/:id", need(domain.PermDeleteUser), users.Delete)
		}
	}

	return router
}
