package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"wealthdesk/api"
	"wealthdesk/internal/app"
	"wealthdesk/internal/ingest"
	"wealthdesk/internal/logger"
	"wealthdesk/internal/repository"
	"wealthdesk/internal/service"
	"wealthdesk/internal/util"

	"github.com/robfig/cron/v3"
)

type Dependencies struct {
	Secrets          *util.Secrets
	Db               *sql.DB
	ApiHandler       *api.ApiHandler
	DashboardHandler app.DashboardHandler
	Importer         ingest.Importer
}

func CloseDependencies(deps *Dependencies) {
	err := deps.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*Dependencies, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(secrets.ChatGPT.ApiKey, secrets.ChatGPT.Model)
	if err != nil {
		return nil, err
	}

	dbConn, err := util.NewDb(secrets.ConnectionStr())
	if err != nil {
		return nil, err
	}

	sipRecordRepository := repository.NewSipRecordRepository(dbConn)
	insuranceRecordRepository := repository.NewInsuranceRecordRepository(dbConn)
	portfolioHoldingRepository := repository.NewPortfolioHoldingRepository(dbConn)
	userRepository := repository.NewUserRepository(dbConn)

	sipOpportunityService := service.NewSipOpportunityService(sipRecordRepository)
	insuranceOpportunityService := service.NewInsuranceOpportunityService(
		insuranceRecordRepository,
		sipRecordRepository,
		userRepository,
	)
	portfolioOpportunityService := service.NewPortfolioOpportunityService(
		portfolioHoldingRepository,
		userRepository,
	)

	dashboardHandler := app.DashboardHandler{
		ReadSessionProvider:           repository.NewReadSessionProvider(dbConn),
		SipOpportunityService:         sipOpportunityService,
		InsuranceOpportunityService:   insuranceOpportunityService,
		PortfolioOpportunityService:   portfolioOpportunityService,
		DashboardSummarizerRepository: gptRepository,
		SummarizerTimeout:             secrets.SummarizerTimeout(),
		Cache:                         app.NewDashboardCache(secrets.DashboardCacheTtl()),
	}

	apiHandler := &api.ApiHandler{
		SipOpportunityService:       sipOpportunityService,
		InsuranceOpportunityService: insuranceOpportunityService,
		PortfolioOpportunityService: portfolioOpportunityService,
		DashboardHandler:            dashboardHandler,
		ApiRequestRepository:        repository.NewApiRequestRepository(dbConn),
	}

	return &Dependencies{
		Secrets:          secrets,
		Db:               dbConn,
		ApiHandler:       apiHandler,
		DashboardHandler: dashboardHandler,
		Importer: ingest.Importer{
			SipRecordRepository:        sipRecordRepository,
			InsuranceRecordRepository:  insuranceRecordRepository,
			PortfolioHoldingRepository: portfolioHoldingRepository,
			UserRepository:             userRepository,
		},
	}, nil
}

// StartDashboardRefresher keeps the configured agents' dashboards warm.
// Returns nil when no schedule or agents are configured.
func StartDashboardRefresher(ctx context.Context, deps *Dependencies) (*cron.Cron, error) {
	schedule := deps.Secrets.Dashboard.RefreshCron
	agents := deps.Secrets.Dashboard.RefreshAgents
	if schedule == "" || len(agents) == 0 {
		logger.FromContext(ctx).Infow("dashboard refresh disabled")
		return nil, nil
	}
	return app.StartDashboardRefresher(ctx, deps.DashboardHandler, schedule, agents)
}
