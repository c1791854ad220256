package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/golangid/wedding-invitation/api"
	"github.com/golangid/wedding-invitation/codebase/app"
	restserver "github.com/golangid/wedding-invitation/codebase/app/rest_server"
	"github.com/golangid/wedding-invitation/config"
	"github.com/golangid/wedding-invitation/configs"
	service "github.com/golangid/wedding-invitation/internal"
	"github.com/golangid/wedding-invitation/internal/modules/invitation"
	"github.com/golangid/wedding-invitation/logger"
)

const serviceName = "wedding-invitation"

func main() {
	seed := flag.Bool("seed", false, "insert sample wedding invitations then exit")
	flag.Parse()

	cfg := config.Init(serviceName)
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\x1b[31;1mFailed to start %s service: %v\x1b[0m\n", serviceName, r)
			fmt.Printf("Stack trace: \n%s\n", debug.Stack())
			cfg.Exit()
			os.Exit(1)
		}
		cfg.Exit()
	}()

	srv := service.NewService(cfg)
	if *seed {
		ids, err := invitation.Seed(context.Background(), srv.InvitationModule().Usecase(), srv.GetDependency().GetValidator(), api.SeedInvitations())
		if err != nil {
			panic(err)
		}
		logger.LogGreen(fmt.Sprintf("seed: %d wedding invitations created", len(ids)))
		srv.GetDependency().Disconnect(context.Background())
		return
	}

	deps := srv.GetDependency()
	if err := app.New(srv,
		restserver.SetHealthCheck(configs.StorageName(deps), configs.HealthCheck(deps)),
	).Run(); err != nil {
		panic(err)
	}
}
