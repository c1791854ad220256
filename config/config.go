package config

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/golangid/wedding-invitation/config/env"
	"github.com/golangid/wedding-invitation/logger"
	"github.com/golangid/wedding-invitation/tracer"
	"go.uber.org/zap/zapcore"
	"github.com/golangid/wedding-invitation/internal/modules/invitation/domain"
)

// Config app
type Config struct {
	ServiceName string
	closers     []io.Closer
}

// Init app config, load environment then init global logger & tracer
func Init(serviceName string) *Config {
	env.Load(serviceName)
	logger.SetDebugMode(env.BaseEnv().DebugMode)
	level := zapcore.InfoLevel
	if env.BaseEnv().DebugMode {
		level = zapcore.DebugLevel
	}
	logger.InitZap(logger.OptionSetLevel(level))

	cfg := &Config{ServiceName: env.BaseEnv().ServiceName}
	if env.BaseEnv().JaegerTracingHost != "" {
		closer, err := tracer.InitOpenTracing(cfg.ServiceName,
			tracer.OptionAddErrorWhitelist(domain.ErrInvitationNotFound),
		)
		if err != nil {
			logger.LogYellow(fmt.Sprintf("tracer: %v, tracing disabled", err))
		} else {
			cfg.closers = append(cfg.closers, closer)
		}
	}
	return cfg
}

// LoadFunc load dependency within the configured timeout, panic when exceeded or failed
func (c *Config) LoadFunc(depsFunc func(context.Context) []io.Closer) {
	ctx, cancel := context.WithTimeout(context.Background(), env.BaseEnv().LoadConfigTimeout)
	defer cancel()

	cfgChan := make(chan []io.Closer)
	errConnect := make(chan interface{})
	go func() {
		defer func() {
			if r := recover(); r != nil {
				errConnect <- r
			}
			close(cfgChan)
			close(errConnect)
		}()

		cfgChan <- depsFunc(ctx)
	}()

	// with timeout to init configuration
	select {
	case closers := <-cfgChan:
		c.closers = append(c.closers, closers...)
	case <-ctx.Done():
		panic(fmt.Errorf("Timeout to load selected dependencies: %v", ctx.Err()))
	case e := <-errConnect:
		panic(fmt.Errorf("Failed to load selected dependencies :=> %v", e))
	}
}

// Exit flush logger & tracer, think as deferred function in main
func (c *Config) Exit() {
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			log.Printf("\x1b[31;1mConfig: %v\x1b[0m", err)
		}
	}
	logger.Sync()

	log.Println("\x1b[33;1mConfig: Success close all connection\x1b[0m")
	time.Sleep(10 * time.Millisecond)
}
