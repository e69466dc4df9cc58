package services

import (
	"context"

	"timesheet/internal/repository"
)

// NewServiceContainer loads the ledger from repo and wires all services
func NewServiceContainer(ctx context.Context, repo repository.Repository, opts ...Option) (*ServiceContainer, error) {
	o := newOptions(opts)

	timeout := defaultStorageTimeout
	if o.config != nil {
		timeout = o.config.Storage.OperationTimeout
	}

	ledger, err := NewLedger(ctx, repo, o.logger, timeout)
	if err != nil {
		return nil, err
	}

	return &ServiceContainer{
		Ledger:    ledger,
		Lifecycle: NewLifecycleService(ledger, opts...),
		Weekly:    NewWeeklyService(ledger, opts...),
		Catalog:   NewCatalogService(repo, opts...),
	}, nil
}
