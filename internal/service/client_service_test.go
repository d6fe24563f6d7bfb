package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"
	"alcyxob/gym-manager/internal/storage"

	"go.uber.org/zap"
)

const clientID = "65f1a2b3c4d5e6f708091a2c"

func validClient() *domain.Client {
	return &domain.Client{Name: "John Smith", MembershipType: "Premium", Status: "active", JoinDate: "2024-01-15"}
}

func TestClientService_CreateValidates(t *testing.T) {
	var stored *domain.Client
	repo := &mockClientRepo{
		createFn: func(ctx context.Context, c *domain.Client) (string, error) {
			stored = c
			return clientID, nil
		},
	}
	svc := NewClientService(repo, storage.NewDisabledStorage(), zap.NewNop())

	c := validClient()
	c.Name = "John O'Neil & Sons"
	c.PhotoKey = "clients/other/key.png"
	id, err := svc.Create(context.Background(), c)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id != clientID {
		t.Errorf("id = %q, want %q", id, clientID)
	}
	if stored.Name != "John O'Neil & Sons" {
		t.Errorf("Name = %q, want it stored as submitted", stored.Name)
	}
	if stored.PhotoKey != "" {
		t.Errorf("PhotoKey = %q, must not be settable on create", stored.PhotoKey)
	}

	bad := validClient()
	bad.MembershipType = "gold"
	var vErr *domain.ValidationError
	if _, err := svc.Create(context.Background(), bad); !errors.As(err, &vErr) {
		t.Errorf("error = %v, want ValidationError", err)
	}
}

func TestClientService_RejectsMarkup(t *testing.T) {
	repo := &mockClientRepo{
		createFn: func(ctx context.Context, c *domain.Client) (string, error) {
			t.Fatalf("stored name %q", c.Name)
			return "", nil
		},
		updateFn: func(ctx context.Context, c *domain.Client) error {
			t.Fatalf("stored name %q", c.Name)
			return nil
		},
	}
	svc := NewClientService(repo, storage.NewDisabledStorage(), zap.NewNop())

	for _, name := range []string{"<i>John</i> Smith", "&lt;script&gt;alert(1)&lt;/script&gt;"} {
		c := validClient()
		c.Name = name
		var vErr *domain.ValidationError
		if _, err := svc.Create(context.Background(), c); !errors.As(err, &vErr) || vErr.Message != domain.MsgMarkupNotAllowed {
			t.Errorf("Create(%q) error = %v, want %q", name, err, domain.MsgMarkupNotAllowed)
		}
		c = validClient()
		c.Name = name
		if err := svc.Update(context.Background(), clientID, c); !errors.As(err, &vErr) || vErr.Field != "name" {
			t.Errorf("Update(%q) error = %v, want name ValidationError", name, err)
		}
	}
}

func TestClientService_GetByIDNotFound(t *testing.T) {
	repo := &mockClientRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Client, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewClientService(repo, storage.NewDisabledStorage(), zap.NewNop())

	if _, err := svc.GetByID(context.Background(), clientID); !errors.Is(err, ErrClientNotFound) {
		t.Errorf("error = %v, want ErrClientNotFound", err)
	}
}

func TestClientService_Update(t *testing.T) {
	repo := &mockClientRepo{
		updateFn: func(ctx context.Context, c *domain.Client) error {
			if c.ID.Hex() != clientID {
				return repository.ErrNotFound
			}
			return nil
		},
	}
	svc := NewClientService(repo, storage.NewDisabledStorage(), zap.NewNop())

	if err := svc.Update(context.Background(), clientID, validClient()); err != nil {
		t.Errorf("Update() error = %v", err)
	}
	if err := svc.Update(context.Background(), "65f1a2b3c4d5e6f708091aff", validClient()); !errors.Is(err, ErrClientNotFound) {
		t.Errorf("missing id: error = %v, want ErrClientNotFound", err)
	}
	if err := svc.Update(context.Background(), "not-an-id", validClient()); !errors.Is(err, ErrClientNotFound) {
		t.Errorf("malformed id: error = %v, want ErrClientNotFound", err)
	}
}

func TestClientService_DeleteRemovesPhoto(t *testing.T) {
	deletedKey := ""
	repo := &mockClientRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Client, error) {
			c := validClient()
			c.PhotoKey = "clients/" + id + "/p.png"
			return c, nil
		},
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}
	files := &mockFileStorage{
		deleteFn: func(ctx context.Context, key string) error {
			deletedKey = key
			return errors.New("bucket unreachable")
		},
	}
	svc := NewClientService(repo, files, zap.NewNop())

	if err := svc.Delete(context.Background(), clientID); err != nil {
		t.Fatalf("Delete() error = %v, photo cleanup must not fail the delete", err)
	}
	if deletedKey != "clients/"+clientID+"/p.png" {
		t.Errorf("deleted key = %q", deletedKey)
	}
}

func TestClientService_DeleteMissingClient(t *testing.T) {
	deleteCalled := false
	repo := &mockClientRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Client, error) {
			return nil, repository.ErrNotFound
		},
		deleteFn: func(ctx context.Context, id string) error {
			deleteCalled = true
			return nil
		},
	}
	svc := NewClientService(repo, storage.NewDisabledStorage(), zap.NewNop())

	if err := svc.Delete(context.Background(), clientID); err != nil {
		t.Errorf("Delete() error = %v, want nil", err)
	}
	if !deleteCalled {
		t.Error("repository delete was not called")
	}
}

func TestClientService_RequestPhotoUpload(t *testing.T) {
	savedKey := ""
	repo := &mockClientRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Client, error) {
			return validClient(), nil
		},
		setPhotoKeyFn: func(ctx context.Context, id, key string) error {
			savedKey = key
			return nil
		},
	}
	files := &mockFileStorage{
		uploadFn: func(ctx context.Context, key, contentType string) (string, error) {
			return "https://s3.local/" + key + "?sig=1", nil
		},
	}
	svc := NewClientService(repo, files, zap.NewNop())

	upload, err := svc.RequestPhotoUpload(context.Background(), clientID, "image/png")
	if err != nil {
		t.Fatalf("RequestPhotoUpload() error = %v", err)
	}
	if !strings.HasPrefix(upload.ObjectKey, "clients/"+clientID+"/") || !strings.HasSuffix(upload.ObjectKey, ".png") {
		t.Errorf("ObjectKey = %q", upload.ObjectKey)
	}
	if savedKey != upload.ObjectKey {
		t.Errorf("saved key = %q, want %q", savedKey, upload.ObjectKey)
	}
	if !strings.Contains(upload.UploadURL, upload.ObjectKey) {
		t.Errorf("UploadURL = %q", upload.UploadURL)
	}

	if _, err := svc.RequestPhotoUpload(context.Background(), clientID, "application/pdf"); !errors.Is(err, ErrUnsupportedPhotoType) {
		t.Errorf("pdf: error = %v, want ErrUnsupportedPhotoType", err)
	}
}

func TestClientService_PhotoWithoutStorage(t *testing.T) {
	repo := &mockClientRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Client, error) {
			c := validClient()
			c.PhotoKey = "clients/x/p.png"
			return c, nil
		},
	}
	svc := NewClientService(repo, storage.NewDisabledStorage(), zap.NewNop())

	if _, err := svc.RequestPhotoUpload(context.Background(), clientID, "image/jpeg"); !errors.Is(err, ErrPhotoStoreUnavailable) {
		t.Errorf("upload: error = %v, want ErrPhotoStoreUnavailable", err)
	}
	if _, err := svc.GetPhotoURL(context.Background(), clientID); !errors.Is(err, ErrPhotoStoreUnavailable) {
		t.Errorf("download: error = %v, want ErrPhotoStoreUnavailable", err)
	}
}

func TestClientService_GetPhotoURL(t *testing.T) {
	photoKey := ""
	repo := &mockClientRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Client, error) {
			c := validClient()
			c.PhotoKey = photoKey
			return c, nil
		},
	}
	files := &mockFileStorage{
		downloadFn: func(ctx context.Context, key string) (string, error) {
			return "https://s3.local/" + key, nil
		},
	}
	svc := NewClientService(repo, files, zap.NewNop())

	if _, err := svc.GetPhotoURL(context.Background(), clientID); !errors.Is(err, ErrPhotoNotFound) {
		t.Errorf("no photo: error = %v, want ErrPhotoNotFound", err)
	}

	photoKey = "clients/x/p.webp"
	got, err := svc.GetPhotoURL(context.Background(), clientID)
	if err != nil {
		t.Fatalf("GetPhotoURL() error = %v", err)
	}
	if got != "https://s3.local/clients/x/p.webp" {
		t.Errorf("url = %q", got)
	}
}
