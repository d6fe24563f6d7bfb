package service

import (
	"context"
	"time"

	"alcyxob/gym-manager/internal/domain"
)

// --- mocks ---

type mockCredentialRepo struct {
	createFn     func(ctx context.Context, cred *domain.Credential) (string, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.Credential, error)
	getByIDFn    func(ctx context.Context, uid string) (*domain.Credential, error)
	deleteFn     func(ctx context.Context, uid string) error
}

func (m *mockCredentialRepo) Create(ctx context.Context, cred *domain.Credential) (string, error) {
	return m.createFn(ctx, cred)
}
func (m *mockCredentialRepo) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	return m.getByEmailFn(ctx, email)
}
func (m *mockCredentialRepo) GetByID(ctx context.Context, uid string) (*domain.Credential, error) {
	return m.getByIDFn(ctx, uid)
}
func (m *mockCredentialRepo) Delete(ctx context.Context, uid string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, uid)
	}
	return nil
}

type mockUserRepo struct {
	createFn  func(ctx context.Context, user *domain.User) error
	getByIDFn func(ctx context.Context, uid string) (*domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.createFn(ctx, user)
}
func (m *mockUserRepo) GetByID(ctx context.Context, uid string) (*domain.User, error) {
	return m.getByIDFn(ctx, uid)
}

type mockClientRepo struct {
	createFn      func(ctx context.Context, c *domain.Client) (string, error)
	getByIDFn     func(ctx context.Context, id string) (*domain.Client, error)
	getAllFn      func(ctx context.Context) ([]domain.Client, error)
	updateFn      func(ctx context.Context, c *domain.Client) error
	deleteFn      func(ctx context.Context, id string) error
	searchFn      func(ctx context.Context, f domain.ClientFilter) ([]domain.Client, error)
	setPhotoKeyFn func(ctx context.Context, id, key string) error
	countFn       func(ctx context.Context) (int64, error)
}

func (m *mockClientRepo) Create(ctx context.Context, c *domain.Client) (string, error) {
	return m.createFn(ctx, c)
}
func (m *mockClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockClientRepo) GetAll(ctx context.Context) ([]domain.Client, error) {
	return m.getAllFn(ctx)
}
func (m *mockClientRepo) Update(ctx context.Context, c *domain.Client) error {
	return m.updateFn(ctx, c)
}
func (m *mockClientRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}
func (m *mockClientRepo) Search(ctx context.Context, f domain.ClientFilter) ([]domain.Client, error) {
	return m.searchFn(ctx, f)
}
func (m *mockClientRepo) SetPhotoKey(ctx context.Context, id, key string) error {
	return m.setPhotoKeyFn(ctx, id, key)
}
func (m *mockClientRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

type mockTrainerRepo struct {
	createFn      func(ctx context.Context, t *domain.Trainer) (string, error)
	getByIDFn     func(ctx context.Context, id string) (*domain.Trainer, error)
	updateFn      func(ctx context.Context, t *domain.Trainer) error
	setScheduleFn func(ctx context.Context, id string, classIDs []string) error
	countFn       func(ctx context.Context) (int64, error)
}

func (m *mockTrainerRepo) Create(ctx context.Context, t *domain.Trainer) (string, error) {
	return m.createFn(ctx, t)
}
func (m *mockTrainerRepo) GetByID(ctx context.Context, id string) (*domain.Trainer, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockTrainerRepo) GetAll(ctx context.Context) ([]domain.Trainer, error) {
	return []domain.Trainer{}, nil
}
func (m *mockTrainerRepo) Update(ctx context.Context, t *domain.Trainer) error {
	return m.updateFn(ctx, t)
}
func (m *mockTrainerRepo) Delete(ctx context.Context, id string) error {
	return nil
}
func (m *mockTrainerRepo) Search(ctx context.Context, f domain.TrainerFilter) ([]domain.Trainer, error) {
	return []domain.Trainer{}, nil
}
func (m *mockTrainerRepo) SetSchedule(ctx context.Context, id string, classIDs []string) error {
	return m.setScheduleFn(ctx, id, classIDs)
}
func (m *mockTrainerRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

type mockClassRepo struct {
	createFn func(ctx context.Context, c *domain.Class) (string, error)
	getAllFn func(ctx context.Context) ([]domain.Class, error)
	updateFn func(ctx context.Context, c *domain.Class) error
	countFn  func(ctx context.Context) (int64, error)
}

func (m *mockClassRepo) Create(ctx context.Context, c *domain.Class) (string, error) {
	return m.createFn(ctx, c)
}
func (m *mockClassRepo) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	return nil, nil
}
func (m *mockClassRepo) GetAll(ctx context.Context) ([]domain.Class, error) {
	return m.getAllFn(ctx)
}
func (m *mockClassRepo) Update(ctx context.Context, c *domain.Class) error {
	return m.updateFn(ctx, c)
}
func (m *mockClassRepo) Delete(ctx context.Context, id string) error {
	return nil
}
func (m *mockClassRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

type mockPackageRepo struct {
	createFn func(ctx context.Context, p *domain.Package) (string, error)
	updateFn func(ctx context.Context, p *domain.Package) error
	countFn  func(ctx context.Context) (int64, error)
}

func (m *mockPackageRepo) Create(ctx context.Context, p *domain.Package) (string, error) {
	return m.createFn(ctx, p)
}
func (m *mockPackageRepo) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	return nil, nil
}
func (m *mockPackageRepo) GetAll(ctx context.Context) ([]domain.Package, error) {
	return []domain.Package{}, nil
}
func (m *mockPackageRepo) Update(ctx context.Context, p *domain.Package) error {
	return m.updateFn(ctx, p)
}
func (m *mockPackageRepo) Delete(ctx context.Context, id string) error {
	return nil
}
func (m *mockPackageRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

type mockPaymentRepo struct {
	getBetweenFn func(ctx context.Context, from, to time.Time) ([]domain.Payment, error)
}

func (m *mockPaymentRepo) GetBetween(ctx context.Context, from, to time.Time) ([]domain.Payment, error) {
	return m.getBetweenFn(ctx, from, to)
}

type mockFileStorage struct {
	uploadFn   func(ctx context.Context, key, contentType string) (string, error)
	downloadFn func(ctx context.Context, key string) (string, error)
	deleteFn   func(ctx context.Context, key string) error
}

func (m *mockFileStorage) GeneratePresignedUploadURL(ctx context.Context, key, contentType string) (string, error) {
	return m.uploadFn(ctx, key, contentType)
}
func (m *mockFileStorage) GeneratePresignedDownloadURL(ctx context.Context, key string) (string, error) {
	return m.downloadFn(ctx, key)
}
func (m *mockFileStorage) DeleteObject(ctx context.Context, key string) error {
	return m.deleteFn(ctx, key)
}
