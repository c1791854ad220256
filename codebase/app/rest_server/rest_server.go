package restserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"

	"github.com/golangid/wedding-invitation/codebase/factory"
	"github.com/golangid/wedding-invitation/codebase/factory/types"
	"github.com/golangid/wedding-invitation/logger"
	"github.com/golangid/wedding-invitation/wrapper"
)

type restServer struct {
	opt          option
	serverEngine *echo.Echo
}

// NewServer create new REST server
func NewServer(service factory.ServiceFactory, opts ...OptionFunc) factory.AppServerFactory {
	server := &restServer{
		serverEngine: echo.New(),
		opt:          getDefaultOption(),
	}
	for _, opt := range opts {
		opt(&server.opt)
	}

	server.serverEngine.HideBanner = true
	server.serverEngine.HidePort = true
	server.serverEngine.Debug = server.opt.debugMode
	server.serverEngine.HTTPErrorHandler = wrapper.CustomHTTPErrorHandler

	server.serverEngine.Use(
		EchoLoggerMiddleware("/health"),
		middleware.Recover(),
		EchoCORSMiddleware(server.opt.cors),
		middleware.BodyLimit(server.opt.bodyLimit),
		server.tracerMiddleware,
	)

	server.serverEngine.GET("/health", wrapper.EchoHandlerHealth(server.opt.storage, server.opt.healthCheck))

	rootPath := server.serverEngine.Group(server.opt.rootPath)
	for _, m := range service.GetModules() {
		if h := m.RESTHandler(); h != nil {
			h.Mount(rootPath)
		}
	}

	routes := server.serverEngine.Routes()
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	for _, route := range routes {
		logger.LogGreen(fmt.Sprintf("[REST-ROUTE] %-6s %-50s --> %s", route.Method, route.Path, route.Name))
	}

	return server
}

// ServeHTTP expose echo engine, used by test
func (s *restServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.serverEngine.ServeHTTP(w, r)
}

func (s *restServer) Serve() error {
	logger.LogIf("HTTP server run at port [::]:%d", s.opt.httpPort)
	err := s.serverEngine.Start(fmt.Sprintf(":%d", s.opt.httpPort))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("REST Server: unexpected error: %w", err)
	}
	return nil
}

func (s *restServer) Shutdown(ctx context.Context) error {
	if err := s.serverEngine.Shutdown(ctx); err != nil {
		return fmt.Errorf("stopping HTTP server: %w", err)
	}
	logger.LogI("Stopping HTTP server: SUCCESS")
	return nil
}

func (s *restServer) Name() string {
	return string(types.REST)
}
