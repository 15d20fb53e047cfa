package handlers

import (
	"time"

	_ "faqdesk/docs" // swagger spec
	"faqdesk/internal/logger"
	"faqdesk/internal/service"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options tunes cross-cutting middleware. Zero values fall back to defaults.
// Only TrustedProxies may set X-Forwarded-For; when empty the peer address is the client.
type Options struct {
	AllowOrigins      []string
	TrustedProxies    []string
	RequestsPerMinute int
	Burst             int
}

const (
	defaultRequestsPerMinute = 30
	defaultBurst             = 10
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	if opts.RequestsPerMinute <= 0 {
		opts.RequestsPerMinute = defaultRequestsPerMinute
	}
	if opts.Burst <= 0 {
		opts.Burst = defaultBurst
	}
	return &Handler{services: services, log: log, opts: opts}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	if err := router.SetTrustedProxies(h.opts.TrustedProxies); err != nil {
		if h.log != nil {
			h.log.Errorw("invalid_trusted_proxies", "proxies", h.opts.TrustedProxies, "err", err)
		}
		_ = router.SetTrustedProxies(nil)
	}
	if h.log != nil {
		router.Use(ginzap.Ginzap(h.log.Zap(), time.RFC3339, true))
		router.Use(ginzap.RecoveryWithZap(h.log.Zap(), true))
	} else {
		router.Use(gin.Recovery())
	}
	router.Use(cors.New(h.corsConfig()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerFAQRoutes(router)
	h.registerTranslateRoutes(router)

	// Live FAQ feed (HTTP upgrade) on the same port
	router.GET("/ws/faqs", h.wsFAQs)

	return router
}

func (h *Handler) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range h.opts.AllowOrigins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(h.opts.AllowOrigins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = h.opts.AllowOrigins
	return cfg
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.POST("/signup", h.signUp)
	r.POST("/login", h.login)
}

func (h *Handler) registerFAQRoutes(r *gin.Engine) {
	faqs := r.Group("/faqs")
	{
		faqs.GET("", h.listFAQs)
		faqs.GET("/:id", h.getFAQ)
		faqs.POST("", h.createFAQ)
		faqs.PUT("/:id", h.userIdMiddleware, h.replaceFAQ)
		faqs.DELETE("/:id", h.userIdMiddleware, h.deleteFAQ)
	}
}

func (h *Handler) registerTranslateRoutes(r *gin.Engine) {
	api := r.Group("/api", h.rateLimitMiddleware())
	{
		api.POST("/detect", h.detectLanguage)
		api.POST("/translate", h.translateText)
	}
}
