package service

import (
	"context"
	"fmt"

	"roundup-saver/internal/core/domain"
	"roundup-saver/internal/core/ports"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// FallbackHolderName is shown when the account holder's name is unavailable.
const FallbackHolderName = "there"

// AccountServiceImpl implements ports.AccountService.
type AccountServiceImpl struct {
	bank ports.BankClient
	log  zerolog.Logger
}

// NewAccountService creates a new AccountServiceImpl.
func NewAccountService(bank ports.BankClient, log zerolog.Logger) *AccountServiceImpl {
	return &AccountServiceImpl{bank: bank, log: log}
}

// ListAccounts returns every account the access token can see.
func (s *AccountServiceImpl) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.bank.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// Greeting returns the account holder's name, or FallbackHolderName on failure.
func (s *AccountServiceImpl) Greeting(ctx context.Context) ports.Greeting {
	name, err := s.bank.AccountHolderName(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("account holder name lookup failed")
		return ports.Greeting{Name: FallbackHolderName, Degraded: true, Error: failureReason(err)}
	}
	if name == "" {
		name = FallbackHolderName
	}
	return ports.Greeting{Name: name}
}

// Overview loads the greeting and the account list concurrently.
func (s *AccountServiceImpl) Overview(ctx context.Context) (*ports.Overview, error) {
	var overview ports.Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		accounts, err := s.ListAccounts(gctx)
		if err != nil {
			return err
		}
		overview.Accounts = accounts
		return nil
	})
	g.Go(func() error {
		overview.Greeting = s.Greeting(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}
