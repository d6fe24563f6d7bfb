package service

import (
	"context"
	"errors"
	"time"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"
)

var ErrPackageNotFound = errors.New("package not found")

// PackageService manages membership packages.
type PackageService interface {
	Create(ctx context.Context, pkg *domain.Package) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Package, error)
	GetAll(ctx context.Context) ([]domain.Package, error)
	Update(ctx context.Context, id string, pkg *domain.Package) error
	Delete(ctx context.Context, id string) error
}

type packageService struct {
	packages repository.PackageRepository
	now      func() time.Time
}

// NewPackageService creates a new instance of packageService.
func NewPackageService(packages repository.PackageRepository) PackageService {
	return &packageService{packages: packages, now: time.Now}
}

func preparePackage(p *domain.Package) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return rejectMarkup("name", p.Name, "description", p.Description)
}

// Create stores the package and stamps its creation time.
func (s *packageService) Create(ctx context.Context, pkg *domain.Package) (string, error) {
	if err := preparePackage(pkg); err != nil {
		return "", err
	}
	pkg.CreatedAt = s.now().UTC()
	return s.packages.Create(ctx, pkg)
}

func (s *packageService) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	pkg, err := s.packages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

func (s *packageService) GetAll(ctx context.Context) ([]domain.Package, error) {
	return s.packages.GetAll(ctx)
}

// Update overwrites the package fields; createdAt is kept.
func (s *packageService) Update(ctx context.Context, id string, pkg *domain.Package) error {
	if err := preparePackage(pkg); err != nil {
		return err
	}
	oid, err := parseEntityID(id)
	if err != nil {
		return ErrPackageNotFound
	}
	pkg.ID = oid
	if err := s.packages.Update(ctx, pkg); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPackageNotFound
		}
		return err
	}
	return nil
}

func (s *packageService) Delete(ctx context.Context, id string) error {
	return s.packages.Delete(ctx, id)
}
