package service

import (
	"context"
	"errors"
	"strings"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"
)

var ErrTrainerNotFound = errors.New("trainer not found")

// TrainerService manages trainers and their weekly class schedule.
type TrainerService interface {
	Create(ctx context.Context, trainer *domain.Trainer) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Trainer, error)
	GetAll(ctx context.Context) ([]domain.Trainer, error)
	Update(ctx context.Context, id string, trainer *domain.Trainer) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, filter domain.TrainerFilter) ([]domain.Trainer, error)
	// ManageSchedule replaces the trainer's class schedule.
	ManageSchedule(ctx context.Context, trainerID string, classIDs []string) error
}

type trainerService struct {
	trainers repository.TrainerRepository
}

// NewTrainerService creates a new instance of trainerService.
func NewTrainerService(trainers repository.TrainerRepository) TrainerService {
	return &trainerService{trainers: trainers}
}

func prepareTrainer(t *domain.Trainer) error {
	t.ApplyDefaults()
	if err := t.Validate(); err != nil {
		return err
	}
	return rejectMarkup("name", t.Name, "speciality", t.Speciality, "contactInfo", t.ContactInfo)
}

func (s *trainerService) Create(ctx context.Context, trainer *domain.Trainer) (string, error) {
	if err := prepareTrainer(trainer); err != nil {
		return "", err
	}
	trainer.ClassSchedule = nil
	return s.trainers.Create(ctx, trainer)
}

func (s *trainerService) GetByID(ctx context.Context, id string) (*domain.Trainer, error) {
	trainer, err := s.trainers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return trainer, nil
}

func (s *trainerService) GetAll(ctx context.Context) ([]domain.Trainer, error) {
	return s.trainers.GetAll(ctx)
}

func (s *trainerService) Update(ctx context.Context, id string, trainer *domain.Trainer) error {
	if err := prepareTrainer(trainer); err != nil {
		return err
	}
	oid, err := parseEntityID(id)
	if err != nil {
		return ErrTrainerNotFound
	}
	trainer.ID = oid
	if err := s.trainers.Update(ctx, trainer); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrainerNotFound
		}
		return err
	}
	return nil
}

func (s *trainerService) Delete(ctx context.Context, id string) error {
	return s.trainers.Delete(ctx, id)
}

func (s *trainerService) Search(ctx context.Context, filter domain.TrainerFilter) ([]domain.Trainer, error) {
	return s.trainers.Search(ctx, filter)
}

func (s *trainerService) ManageSchedule(ctx context.Context, trainerID string, classIDs []string) error {
	if strings.TrimSpace(trainerID) == "" || classIDs == nil {
		return domain.NewValidationError("trainerId", domain.MsgFieldsRequired)
	}
	schedule := make([]string, 0, len(classIDs))
	for _, id := range classIDs {
		if id = strings.TrimSpace(id); id != "" {
			schedule = append(schedule, id)
		}
	}
	if err := s.trainers.SetSchedule(ctx, trainerID, schedule); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrainerNotFound
		}
		return err
	}
	return nil
}
