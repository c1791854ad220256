package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golangid/wedding-invitation/candihelper"
	restserver "github.com/golangid/wedding-invitation/codebase/app/rest_server"
	"github.com/golangid/wedding-invitation/codebase/factory"
	"github.com/golangid/wedding-invitation/config/env"
)

// App service
type App struct {
	service factory.ServiceFactory
	servers []factory.AppServerFactory
}

// New service app, the REST server options are taken from environment
func New(service factory.ServiceFactory, opts ...restserver.OptionFunc) *App {
	log.Printf("Starting %s service\n\n", candihelper.StringGreen(string(service.Name())))

	restOpts := []restserver.OptionFunc{
		restserver.SetHTTPPort(env.BaseEnv().HTTPPort),
		restserver.SetRootPath(env.BaseEnv().HTTPRootPath),
		restserver.SetDebugMode(env.BaseEnv().DebugMode),
	}
	restOpts = append(restOpts, opts...)

	return &App{
		service: service,
		servers: []factory.AppServerFactory{restserver.NewServer(service, restOpts...)},
	}
}

// Run start app, block until quit signal or one of server failed
func (a *App) Run() error {
	if len(a.servers) == 0 {
		return errors.New("no server running")
	}

	errServe := make(chan error, len(a.servers))
	for _, server := range a.servers {
		go func(srv factory.AppServerFactory) {
			defer func() {
				if r := recover(); r != nil {
					errServe <- fmt.Errorf("%s: %v", srv.Name(), r)
				}
			}()
			if err := srv.Serve(); err != nil {
				errServe <- fmt.Errorf("%s: %w", srv.Name(), err)
			}
		}(server)
	}

	quitSignal := make(chan os.Signal, 1)
	signal.Notify(quitSignal, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quitSignal)

	select {
	case err := <-errServe:
		a.shutdown(quitSignal)
		return err
	case <-quitSignal:
		a.shutdown(quitSignal)
	}
	return nil
}

// graceful shutdown all server then release dependency, stop waiting when timeout exceeded or got second signal
func (a *App) shutdown(forceShutdown chan os.Signal) {
	fmt.Println(candihelper.StringYellow("Gracefully shutdown... (press Ctrl+C again to force)"))

	timeout := env.BaseEnv().ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, server := range a.servers {
			if err := server.Shutdown(ctx); err != nil {
				log.Printf("\x1b[31;1m%s: %v\x1b[0m", server.Name(), err)
			}
		}
		if deps := a.service.GetDependency(); deps != nil {
			if err := deps.Disconnect(ctx); err != nil {
				log.Printf("\x1b[31;1mdependency: %v\x1b[0m", err)
			}
		}
	}()

	select {
	case <-done:
		log.Println("\x1b[32;1mSuccess shutdown all server\x1b[0m")
	case <-forceShutdown:
		log.Println("\x1b[31;1mForce shutdown server\x1b[0m")
	case <-ctx.Done():
		log.Println("\x1b[31;1mContext timeout\x1b[0m")
	}
}
