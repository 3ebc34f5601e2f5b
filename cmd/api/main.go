package main

import (
	"context"
	"log"
	"os"

	"wealthdesk/cmd"
	"wealthdesk/internal/logger"
)

func main() {
	lg := logger.New()
	lg.Infow("starting api", "commitHash", os.Getenv("commit_hash"))
	ctx := logger.WithContext(context.Background(), lg)

	deps, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	refresher, err := cmd.StartDashboardRefresher(ctx, deps)
	if err != nil {
		log.Fatal(err)
	}
	if refresher != nil {
		defer refresher.Stop()
	}

	err = deps.ApiHandler.StartApi(deps.Secrets.Port)
	if err != nil {
		log.Fatal(err)
	}
}
