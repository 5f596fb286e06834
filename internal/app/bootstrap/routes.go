// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	healthfeature "github.com/dalemusser/lessonshop/internal/app/features/health"
	imagesfeature "github.com/dalemusser/lessonshop/internal/app/features/images"
	lessonsfeature "github.com/dalemusser/lessonshop/internal/app/features/lessons"
	ordersfeature "github.com/dalemusser/lessonshop/internal/app/features/orders"
	lessonstore "github.com/dalemusser/lessonshop/internal/app/store/lessons"
	orderstore "github.com/dalemusser/lessonshop/internal/app/store/orders"
	"github.com/dalemusser/lessonshop/internal/app/system/reqlog"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// The JSON API lives under /api, lesson images under /images/lessons, and
// anything else falls through to the storefront's static files.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(reqlog.Middleware(logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: appCfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", reqlog.HeaderRequestID},
		ExposedHeaders: []string{reqlog.HeaderRequestID},
		MaxAge:         300,
	}))

	lessonsHandler := lessonsfeature.NewHandler(lessonstore.New(deps.Database), logger)
	ordersHandler := ordersfeature.NewHandler(orderstore.New(deps.Database), logger)
	healthHandler := healthfeature.NewHandler(deps.Client, logger)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/health", healthfeature.Routes(healthHandler))
		r.Mount("/lessons", lessonsfeature.Routes(lessonsHandler))
		r.Get("/search", lessonsHandler.Search)
		r.Mount("/orders", ordersfeature.Routes(ordersHandler))
	})

	imagesHandler := imagesfeature.NewHandler(appCfg.LessonImagesDir, logger)
	r.Mount("/images/lessons", imagesfeature.Routes(imagesHandler))

	// Storefront assets with pre-compressed file support (gzip/brotli)
	r.Handle("/*", fileserver.Handler("/", appCfg.PublicDir))

	return r, nil
}
