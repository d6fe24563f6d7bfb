package service

import (
	"context"
	"fmt"
	"time"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"
)

// StatsService aggregates dashboard figures over the stored collections.
type StatsService interface {
	MembersCount(ctx context.Context) (int64, error)
	TrainersCount(ctx context.Context) (int64, error)
	ClassesCount(ctx context.Context) (int64, error)
	PlansCount(ctx context.Context) (int64, error)
	// ClassesPerDay returns a count for every weekday, zero when no class runs that day.
	ClassesPerDay(ctx context.Context) (map[string]int, error)
	// MonthlyRevenue sums payments made in the current calendar month (UTC).
	MonthlyRevenue(ctx context.Context) (float64, error)
}

type statsService struct {
	clients  repository.ClientRepository
	trainers repository.TrainerRepository
	classes  repository.ClassRepository
	packages repository.PackageRepository
	payments repository.PaymentRepository
	now      func() time.Time
}

// NewStatsService creates a new instance of statsService.
func NewStatsService(
	clients repository.ClientRepository,
	trainers repository.TrainerRepository,
	classes repository.ClassRepository,
	packages repository.PackageRepository,
	payments repository.PaymentRepository,
) StatsService {
	return &statsService{
		clients:  clients,
		trainers: trainers,
		classes:  classes,
		packages: packages,
		payments: payments,
		now:      time.Now,
	}
}

func (s *statsService) MembersCount(ctx context.Context) (int64, error) {
	return s.clients.Count(ctx)
}

func (s *statsService) TrainersCount(ctx context.Context) (int64, error) {
	return s.trainers.Count(ctx)
}

func (s *statsService) ClassesCount(ctx context.Context) (int64, error) {
	return s.classes.Count(ctx)
}

func (s *statsService) PlansCount(ctx context.Context) (int64, error) {
	return s.packages.Count(ctx)
}

func (s *statsService) ClassesPerDay(ctx context.Context) (map[string]int, error) {
	classes, err := s.classes.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load classes: %w", err)
	}
	return countByDay(classes), nil
}

func countByDay(classes []domain.Class) map[string]int {
	counts := make(map[string]int, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		counts[day] = 0
	}
	for _, c := range classes {
		if _, ok := counts[c.Day]; ok {
			counts[c.Day]++
		}
	}
	return counts
}

func (s *statsService) MonthlyRevenue(ctx context.Context) (float64, error) {
	from, to := monthBounds(s.now())
	payments, err := s.payments.GetBetween(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("load payments: %w", err)
	}
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total, nil
}

// monthBounds returns [first instant of t's UTC month, first instant of the next).
func monthBounds(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}
