package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/campus-project/campus-server/internal/api/handlers"
	"github.com/campus-project/campus-server/internal/api/middleware"
	"github.com/campus-project/campus-server/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps carries everything the route table needs. All dependencies are
// constructed at startup and injected; nothing is looked up globally.
type RouterDeps struct {
	Tokens     *auth.TokenService
	Roles      middleware.RoleSource
	Auth       *handlers.AuthHandler
	Users      *handlers.UserHandler
	Lugares    *handlers.LugarHandler
	Categorias *handlers.CategoriaHandler
	Edificios  *handlers.EdificioHandler
	Bloques    *handlers.BloqueHandler
	Evaluacion *handlers.EvaluacionHandler
	Wifi       *handlers.WifiHandler
	BasePath   string
	StaticDir  string
}

// NewRouter builds the single route table: auth flows, per-resource CRUD,
// health/metrics, and the static frontend fallback for non-API paths.
// Reads are public so the navigation frontend works unauthenticated;
// mutations require an admin bearer token.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authRequired := middleware.RequireAuth(deps.Tokens)
	adminRequired := middleware.RequireAdmin(deps.Roles)

	base := router.Group(deps.BasePath)

	base.POST("/register", deps.Auth.Register)

	api := base.Group("/api")
	{
		api.POST("/login", deps.Auth.Login)
		api.POST("/logout", deps.Auth.Logout)
		api.GET("/verify-token", authRequired, deps.Auth.VerifyToken)
		api.GET("/profile", authRequired, deps.Auth.Profile)

		usuarios := api.Group("/usuarios", authRequired, adminRequired)
		{
			usuarios.GET("", deps.Users.ListUsers)
			usuarios.POST("", deps.Users.CreateUser)
			usuarios.PUT("/:id", deps.Users.UpdateUser)
			usuarios.DELETE("/:id", deps.Users.DeleteUser)
		}

		api.GET("/lugar", deps.Lugares.ListLugares)
		api.POST("/lugar", authRequired, adminRequired, deps.Lugares.CreateLugar)
		api.PUT("/lugar/:id", authRequired, adminRequired, deps.Lugares.UpdateLugar)
		api.DELETE("/lugar/:id", authRequired, adminRequired, deps.Lugares.DeleteLugar)

		api.GET("/categorias", deps.Categorias.ListCategorias)
		api.GET("/categorias/lugar", deps.Categorias.ListCategoriasByLugar)
		api.POST("/categorias", authRequired, adminRequired, deps.Categorias.CreateCategoria)
		api.PUT("/categorias/:id", authRequired, adminRequired, deps.Categorias.UpdateCategoria)
		api.DELETE("/categorias/:id", authRequired, adminRequired, deps.Categorias.DeleteCategoria)

		api.GET("/edificios", deps.Edificios.ListEdificios)
		api.POST("/edificios", authRequired, adminRequired, deps.Edificios.CreateEdificio)
		api.PUT("/edificios/:id", authRequired, adminRequired, deps.Edificios.UpdateEdificio)
		api.DELETE("/edificios/:id", authRequired, adminRequired, deps.Edificios.DeleteEdificio)

		api.GET("/bloques", deps.Bloques.ListBloques)
		api.GET("/bloques/:id", deps.Bloques.GetBloque)
		api.GET("/laboratorios", deps.Bloques.GetLaboratorios)
		api.POST("/bloques", authRequired, adminRequired, deps.Bloques.CreateBloque)
		api.PUT("/bloques/:id", authRequired, adminRequired, deps.Bloques.UpdateBloque)
		api.DELETE("/bloques/:id", authRequired, adminRequired, deps.Bloques.DeleteBloque)

		api.GET("/evaluaciones", deps.Evaluacion.ListEvaluaciones)
		api.POST("/evaluaciones", authRequired, adminRequired, deps.Evaluacion.CreateEvaluacion)
		api.PUT("/evaluaciones/:id", authRequired, adminRequired, deps.Evaluacion.UpdateEvaluacion)
		api.DELETE("/evaluaciones/:id", authRequired, adminRequired, deps.Evaluacion.DeleteEvaluacion)

		// Wifi credentials are secrets; reads need any authenticated user.
		api.GET("/wifi", authRequired, deps.Wifi.GetWifi)
		api.POST("/wifi", authRequired, adminRequired, deps.Wifi.CreateWifi)
		api.PUT("/wifi/:id", authRequired, adminRequired, deps.Wifi.UpdateWifi)
		api.DELETE("/wifi/:id", authRequired, adminRequired, deps.Wifi.DeleteWifi)
	}

	// Non-API routes fall back to the static frontend bundle.
	router.NoRoute(staticFallback(deps.BasePath, deps.StaticDir))

	return router
}

func staticFallback(basePath, staticDir string) gin.HandlerFunc {
	apiPrefix := basePath + "/api"
	index := filepath.Join(staticDir, "index.html")

	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, apiPrefix) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ruta no encontrada"})
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+strings.TrimPrefix(c.Request.URL.Path, basePath)))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}

		// Any other route serves the single-page app shell.
		c.File(index)
	}
}
