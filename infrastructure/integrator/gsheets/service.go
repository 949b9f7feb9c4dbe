package gsheets

import (
	"context"

	"github.com/socialpulse/follower-report-api/infrastructure/integrator/gsheets/sheetsclient"
	"github.com/socialpulse/follower-report-api/internal/config"
	"github.com/socialpulse/follower-report-api/internal/domain"
)

// Integrator binds the raw sheets client to the configured named ranges.
type Integrator struct {
	cfg    *config.Config
	client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		client: client,
	}
}

func (i *Integrator) FetchEmployeeSheet(ctx context.Context) (*domain.RawSheet, error) {
	return i.client.FetchRange(ctx, i.cfg.Google.EmployeeRange)
}

func (i *Integrator) FetchTotalsSheet(ctx context.Context) (*domain.RawSheet, error) {
	return i.client.FetchRange(ctx, i.cfg.Google.TotalsRange)
}
