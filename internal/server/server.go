package server

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"time"

	"anoa.com/socialfeed/internal/bootstrap"
	"anoa.com/socialfeed/internal/config"

	activityRepo "anoa.com/socialfeed/internal/modules/activity/repository"
	activityService "anoa.com/socialfeed/internal/modules/activity/service"

	categoryHttp "anoa.com/socialfeed/internal/modules/category/delivery/http"
	categoryRepo "anoa.com/socialfeed/internal/modules/category/repository"
	categoryService "anoa.com/socialfeed/internal/modules/category/service"

	commentHttp "anoa.com/socialfeed/internal/modules/comment/delivery/http"
	commentRepo "anoa.com/socialfeed/internal/modules/comment/repository"
	commentService "anoa.com/socialfeed/internal/modules/comment/service"

	postHttp "anoa.com/socialfeed/internal/modules/post/delivery/http"
	postRepo "anoa.com/socialfeed/internal/modules/post/repository"
	postService "anoa.com/socialfeed/internal/modules/post/service"

	profileHttp "anoa.com/socialfeed/internal/modules/profile/delivery/http"
	profileService "anoa.com/socialfeed/internal/modules/profile/service"

	screenHttp "anoa.com/socialfeed/internal/modules/screen/delivery/http"
	screenService "anoa.com/socialfeed/internal/modules/screen/service"

	searchHttp "anoa.com/socialfeed/internal/modules/search/delivery/http"
	searchService "anoa.com/socialfeed/internal/modules/search/service"

	themeHttp "anoa.com/socialfeed/internal/modules/theme/delivery/http"
	themeRepo "anoa.com/socialfeed/internal/modules/theme/repository"
	themeService "anoa.com/socialfeed/internal/modules/theme/service"

	"anoa.com/socialfeed/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
)

type Server struct {
	engine *gin.Engine
	store  themeService.ThemeStore
}

// NewServer wires every module over the seeded catalog. The theme store is
// created here but not loaded; callers decide when to Load it.
func NewServer(ctx context.Context, cfg *config.Config, prefs themeRepo.PreferenceRepository) (*Server, error) {
	catalog := bootstrap.SeedCatalog()

	store := themeService.NewThemeStore(prefs)
	themeHandler := themeHttp.NewThemeHandler(store)

	postRepository := postRepo.NewPostRepository(catalog.Posts)
	profileSvc := profileService.NewProfileService(catalog.Profile)
	profileHandler := profileHttp.NewProfileHandler(profileSvc)

	postSvc := postService.NewPostService(postRepository, profileSvc.Author())
	postHandler := postHttp.NewPostHandler(postSvc)

	categorySvc := categoryService.NewCategoryService(categoryRepo.NewCategoryRepository(catalog.Categories), postRepository, nil)
	categoryHandler := categoryHttp.NewCategoryHandler(categorySvc)

	commentSvc := commentService.NewCommentService(commentRepo.NewCommentRepository(catalog.Comments), profileSvc.Author())
	commentHandler := commentHttp.NewCommentHandler(commentSvc)

	activitySvc := activityService.NewActivityService(activityRepo.NewActivityRepository(catalog.Activities))

	searcher := newSearcher(ctx, cfg, postRepository)
	searchHandler := searchHttp.NewSearchHandler(searcher)

	views, err := screenService.NewViewRegistry(cfg.MaxViews)
	if err != nil {
		return nil, err
	}
	screenSvc := screenService.NewScreenService(store, views, screenService.Dependencies{
		Posts:      postSvc,
		Categories: categorySvc,
		Comments:   commentSvc,
		Activities: activitySvc,
		Profile:    profileSvc,
		Searcher:   searcher,
	}, cfg.RefreshDelay)
	screenHandler := screenHttp.NewScreenHandler(screenSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/theme/ws"},
	}))

	api := router.Group("/api")

	themeGroup := api.Group("/theme")
	{
		themeGroup.GET("", themeHandler.GetTheme)
		themeGroup.POST("/toggle", themeHandler.ToggleTheme)
		themeGroup.GET("/ws", themeHandler.HandleWebSocket)
	}

	// Screen routes
	screens := api.Group("/screens")
	{
		screens.GET("/home", screenHandler.Home)
		screens.GET("/explore", screenHandler.Explore)
		screens.GET("/create", screenHandler.Create)
		screens.GET("/activity", screenHandler.Activity)
		screens.GET("/profile", screenHandler.Profile)
		screens.GET("/posts/:post_id", screenHandler.PostDetail)
		screens.GET("/categories/:category_id", screenHandler.CategoryFeed)
	}

	viewGroup := api.Group("/views/:view_id")
	{
		viewGroup.POST("/posts/:post_id/like", screenHandler.ToggleLike)
		viewGroup.POST("/posts/:post_id/bookmark", screenHandler.ToggleBookmark)
		viewGroup.POST("/refresh", screenHandler.Refresh)
	}

	// Content routes
	api.POST("/posts", postHandler.CreatePost)
	api.GET("/posts/:post_id", postHandler.GetPostByID)
	api.GET("/posts/:post_id/comments", commentHandler.GetComments)
	api.POST("/posts/:post_id/comments", commentHandler.CreateComment)
	api.GET("/categories", categoryHandler.GetAllCategories)
	api.GET("/categories/:id", categoryHandler.GetCategoryByID)
	api.GET("/profile", profileHandler.GetProfile)
	api.GET("/search", searchHandler.Search)

	return &Server{
		engine: router,
		store:  store,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Store() themeService.ThemeStore {
	return s.store
}

// newSearcher prefers Meilisearch when configured and reachable.
func newSearcher(ctx context.Context, cfg *config.Config, posts postRepo.PostRepository) searchService.Searcher {
	catalogSearcher := searchService.NewCatalogSearcher(posts)
	if cfg.MeiliSearchHost == "" {
		return catalogSearcher
	}

	meiliHost := cfg.MeiliSearchHost
	if !strings.HasPrefix(meiliHost, "http") {
		meiliHost = "http://" + meiliHost + ":7700"
	}

	client := meilisearch.New(meiliHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	searcher, err := searchService.NewMeiliSearcher(ctx, client, posts, catalogSearcher)
	if err != nil {
		logger.Log.WithError(err).Warn("meilisearch unavailable, using catalog search")
		return catalogSearcher
	}
	return searcher
}

// setupCORS allows every origin when none are configured. Credentials are
// only shared with listed origins.
func setupCORS(router *gin.Engine, origins []string) {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}

	router.Use(cors.New(corsConfig))
}
