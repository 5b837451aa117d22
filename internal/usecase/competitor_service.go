package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/music-league/internal/domain/competitor"
	"github.com/riskibarqy/music-league/internal/domain/snapshot"
)

type CompetitorService struct {
	repo snapshot.Repository
}

func NewCompetitorService(repo snapshot.Repository) *CompetitorService {
	return &CompetitorService{repo: repo}
}

func (s *CompetitorService) List(ctx context.Context, sheetID string) ([]competitor.Competitor, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitorService.List")
	defer span.End()

	sheetID, err := normalizeSheetID(sheetID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListCompetitors(ctx, sheetID)
	if err != nil {
		return nil, fmt.Errorf("list competitors: %w", err)
	}
	return items, nil
}
