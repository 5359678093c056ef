package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	appMiddleware "github.com/prasetyowira/qrgen/api/middleware"
	"github.com/prasetyowira/qrgen/constant"
	appLogger "github.com/prasetyowira/qrgen/infrastructure/logger"
)

// WindowHandler is the set of endpoints making up the window
type WindowHandler interface {
	ShowWindow(w http.ResponseWriter, r *http.Request)
	GenerateClick(w http.ResponseWriter, r *http.Request)
	ServePreview(w http.ResponseWriter, r *http.Request)
}

// Router represents the application router
type Router struct {
	handler WindowHandler
	router  *chi.Mux
}

// NewRouter creates a new router
func NewRouter(handler WindowHandler) *Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(appMiddleware.RequestLogger())

	return &Router{
		handler: handler,
		router:  r,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() {
	appLogger.Info(constant.MsgSettingUpRoutes, appLogger.LoggerInfo{
		ContextFunction: constant.CtxRouter,
	})

	r.router.Get(constant.RouteWindow, r.handler.ShowWindow)
	r.router.With(appMiddleware.SameOrigin()).Post(constant.RouteGenerate, r.handler.GenerateClick)
	r.router.Get(constant.RoutePreview, r.handler.ServePreview)

	r.router.Get(constant.RouteHealthcheck, func(w http.ResponseWriter, r *http.Request) {
		appLogger.CtxDebug(r.Context(), constant.MsgHealthcheckRequest, appLogger.LoggerInfo{
			ContextFunction: constant.CtxRouter,
		})

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(constant.MsgHealthy))
	})
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
