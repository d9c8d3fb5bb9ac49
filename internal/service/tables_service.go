package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"hotelbooking/internal/repository"
)

type StatsService interface {
	RowCounts(ctx context.Context) (map[string]int64, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
	log       logrus.FieldLogger
}

func NewStatsService(statsRepo repository.StatsRepository, log logrus.FieldLogger) StatsService {
	return &statsService{statsRepo: statsRepo, log: log}
}

func (s *statsService) RowCounts(ctx context.Context) (map[string]int64, error) {
	counts, err := s.statsRepo.CountRows(ctx)
	if err != nil {
		s.log.WithError(err).Error("count rows")
		return nil, newError(KindServerError, MsgServerError, err)
	}

	return counts, nil
}
