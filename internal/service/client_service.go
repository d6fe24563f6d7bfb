package service

import (
	"context"
	"errors"
	"fmt"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"
	"alcyxob/gym-manager/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrClientNotFound        = errors.New("client not found")
	ErrPhotoNotFound         = errors.New("client has no photo")
	ErrUnsupportedPhotoType  = errors.New("unsupported photo content type")
	ErrPhotoStoreUnavailable = errors.New("photo storage is unavailable")
)

// photoExtensions maps accepted photo content types to object key suffixes.
var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// PhotoUpload is a presigned upload target for a member photo.
type PhotoUpload struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// ClientService manages gym members.
type ClientService interface {
	Create(ctx context.Context, client *domain.Client) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	GetAll(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, id string, client *domain.Client) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error)

	// RequestPhotoUpload records a new photo key for the client and returns
	// a presigned PUT URL for it.
	RequestPhotoUpload(ctx context.Context, id, contentType string) (*PhotoUpload, error)
	GetPhotoURL(ctx context.Context, id string) (string, error)
}

type clientService struct {
	clients repository.ClientRepository
	files   storage.FileStorage
	logger  *zap.Logger
}

// NewClientService creates a new instance of clientService.
func NewClientService(clients repository.ClientRepository, files storage.FileStorage, logger *zap.Logger) ClientService {
	return &clientService{clients: clients, files: files, logger: logger}
}

func prepareClient(c *domain.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return rejectMarkup("name", c.Name)
}

func (s *clientService) Create(ctx context.Context, client *domain.Client) (string, error) {
	if err := prepareClient(client); err != nil {
		return "", err
	}
	client.PhotoKey = ""
	return s.clients.Create(ctx, client)
}

func (s *clientService) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) GetAll(ctx context.Context) ([]domain.Client, error) {
	return s.clients.GetAll(ctx)
}

func (s *clientService) Update(ctx context.Context, id string, client *domain.Client) error {
	if err := prepareClient(client); err != nil {
		return err
	}
	oid, err := parseEntityID(id)
	if err != nil {
		return ErrClientNotFound
	}
	client.ID = oid
	if err := s.clients.Update(ctx, client); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return err
	}
	return nil
}

// Delete removes the client and, best effort, its photo object.
func (s *clientService) Delete(ctx context.Context, id string) error {
	var photoKey string
	if existing, err := s.clients.GetByID(ctx, id); err == nil {
		photoKey = existing.PhotoKey
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	if err := s.clients.Delete(ctx, id); err != nil {
		return err
	}

	if photoKey != "" {
		if err := s.files.DeleteObject(ctx, photoKey); err != nil {
			s.logger.Warn("client photo left in storage",
				zap.String("clientId", id),
				zap.String("key", photoKey),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (s *clientService) Search(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error) {
	return s.clients.Search(ctx, filter)
}

func (s *clientService) RequestPhotoUpload(ctx context.Context, id, contentType string) (*PhotoUpload, error) {
	ext, ok := photoExtensions[contentType]
	if !ok {
		return nil, ErrUnsupportedPhotoType
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("clients/%s/%s%s", id, uuid.NewString(), ext)
	uploadURL, err := s.files.GeneratePresignedUploadURL(ctx, key, contentType)
	if err != nil {
		if errors.Is(err, storage.ErrStorageUnavailable) {
			return nil, ErrPhotoStoreUnavailable
		}
		return nil, fmt.Errorf("presign photo upload: %w", err)
	}

	if err := s.clients.SetPhotoKey(ctx, id, key); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &PhotoUpload{UploadURL: uploadURL, ObjectKey: key}, nil
}

func (s *clientService) GetPhotoURL(ctx context.Context, id string) (string, error) {
	client, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if client.PhotoKey == "" {
		return "", ErrPhotoNotFound
	}
	downloadURL, err := s.files.GeneratePresignedDownloadURL(ctx, client.PhotoKey)
	if err != nil {
		if errors.Is(err, storage.ErrStorageUnavailable) {
			return "", ErrPhotoStoreUnavailable
		}
		return "", fmt.Errorf("presign photo download: %w", err)
	}
	return downloadURL, nil
}
