package search

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	minTermLength = 2
	defaultLimit  = 10
)

type Service interface {
	Search(ctx context.Context, term string, limit int) (*Results, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Search fans out to all three submission tables concurrently. Terms
// shorter than two characters resolve to empty results with no query issued.
func (s *service) Search(ctx context.Context, term string, limit int) (*Results, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < minTermLength {
		return EmptyResults(), nil
	}
	if limit < 1 {
		limit = defaultLimit
	}

	results := EmptyResults()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hits, err := s.repo.SearchReservations(gctx, term, limit)
		if err != nil {
			return err
		}
		results.Reservations = hits
		return nil
	})
	g.Go(func() error {
		hits, err := s.repo.SearchSiteVisits(gctx, term, limit)
		if err != nil {
			return err
		}
		results.SiteVisits = hits
		return nil
	})
	g.Go(func() error {
		hits, err := s.repo.SearchSettlements(gctx, term, limit)
		if err != nil {
			return err
		}
		results.Settlements = hits
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
