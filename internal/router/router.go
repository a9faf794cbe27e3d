package router

import (
	"net/http"
	"os"
	"strings"

	"animal-tracker/docs"
	mem "animal-tracker/internal/adapters/storage/memory"
	"animal-tracker/internal/domain/animals"
	"animal-tracker/internal/middleware"
	"animal-tracker/internal/platform/config"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Options struct {
	// Opcional: si no viene, in-memory (modo dev / tests).
	Repo animals.Repository

	Logger *zap.Logger

	// Límite de body; 0 = config.DefaultMaxBodyBytes.
	MaxBodyBytes int64

	// Opcional: directorio con el frontend estático (index.html, app.js...).
	StaticDir string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = config.DefaultMaxBodyBytes
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	docs.SwaggerInfo.BasePath = "/"
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	repo := opts.Repo
	if repo == nil {
		repo = mem.NewAnimalRepo()
	}
	svc := animals.NewService(repo)

	// Las fotos viajan inline en base64: el límite aplica solo a la API.
	r.Group(func(api chi.Router) {
		api.Use(middleware.BodyLimit(maxBody))
		animals.RegisterRoutes(api, svc, log)
	})

	if dir := strings.TrimSpace(opts.StaticDir); dir != "" {
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			r.Handle("/*", http.FileServer(http.Dir(dir)))
		} else {
			log.Warn("static dir not found, frontend disabled", zap.String("dir", dir))
		}
	}

	return r
}
