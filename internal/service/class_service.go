package service

import (
	"context"
	"errors"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"
)

var ErrClassNotFound = errors.New("class not found")

// ClassService manages the weekly class timetable.
type ClassService interface {
	Create(ctx context.Context, class *domain.Class) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Class, error)
	GetAll(ctx context.Context) ([]domain.Class, error)
	Update(ctx context.Context, id string, class *domain.Class) error
	Delete(ctx context.Context, id string) error
}

type classService struct {
	classes repository.ClassRepository
}

// NewClassService creates a new instance of classService.
func NewClassService(classes repository.ClassRepository) ClassService {
	return &classService{classes: classes}
}

func prepareClass(c *domain.Class) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return rejectMarkup("name", c.Name)
}

func (s *classService) Create(ctx context.Context, class *domain.Class) (string, error) {
	if err := prepareClass(class); err != nil {
		return "", err
	}
	return s.classes.Create(ctx, class)
}

func (s *classService) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	class, err := s.classes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return class, nil
}

func (s *classService) GetAll(ctx context.Context) ([]domain.Class, error) {
	return s.classes.GetAll(ctx)
}

func (s *classService) Update(ctx context.Context, id string, class *domain.Class) error {
	if err := prepareClass(class); err != nil {
		return err
	}
	oid, err := parseEntityID(id)
	if err != nil {
		return ErrClassNotFound
	}
	class.ID = oid
	if err := s.classes.Update(ctx, class); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClassNotFound
		}
		return err
	}
	return nil
}

func (s *classService) Delete(ctx context.Context, id string) error {
	return s.classes.Delete(ctx, id)
}
