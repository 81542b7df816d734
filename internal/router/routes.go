package router

import (
	"time"

	"github.com/AlenaMolokova/nationalcode/internal/handlers"
	"github.com/AlenaMolokova/nationalcode/internal/middleware"
	"github.com/AlenaMolokova/nationalcode/internal/storage"
	"github.com/AlenaMolokova/nationalcode/internal/usecase"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const (
	UserPrefix   = "/api/user"
	CodesPrefix  = "/api/codes"
	ValidatePath = "/validate"
	RegisterPath = "/register"
	LoginPath    = "/login"
	ChecksPath   = "/checks"
	PingPath     = "/ping"
)

type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	Logger    *zap.Logger
}

func SetupRoutes(store *storage.Storage, opts Options) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)

	checkUC := usecase.NewCheckUseCase(store)
	userUC := usecase.NewUserUseCase(store, opts.JWTSecret, opts.TokenTTL)

	r.Method("GET", PingPath, handlers.NewPingHandler(store, opts.Logger))
	r.Method("POST", CodesPrefix+ValidatePath, handlers.NewValidateHandler(checkUC, opts.Logger))
	r.Method("POST", UserPrefix+RegisterPath, handlers.NewRegisterHandler(userUC, opts.Logger))
	r.Method("POST", UserPrefix+LoginPath, handlers.NewLoginHandler(userUC, opts.Logger))

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(opts.JWTSecret, opts.Logger))
		r.Method("POST", UserPrefix+ChecksPath, handlers.NewCheckHandler(checkUC, opts.Logger))
		r.Method("GET", UserPrefix+ChecksPath, handlers.NewChecksGetHandler(checkUC, opts.Logger))
	})

	return r
}
