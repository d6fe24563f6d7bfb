package api

import (
	"context"
	"net/http"
	"reflect"
	"testing"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/service"
)

func TestCreateTrainerWithoutStatus(t *testing.T) {
	var got *domain.Trainer
	svc := &mockTrainerService{
		createFn: func(ctx context.Context, tr *domain.Trainer) (string, error) {
			got = tr
			return "t1", nil
		},
	}
	router, _ := newTestRouter(t, Services{Trainers: svc})

	w := doRequest(t, router, http.MethodPost, "/api/trainers", map[string]string{
		"name": "Alex", "speciality": "Yoga", "assignedClasses": "c1", "contactInfo": "555-0100",
	}, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if got.Status != "" {
		t.Errorf("handler must leave status defaulting to the service, got %q", got.Status)
	}
}

func TestTrainerCRUD(t *testing.T) {
	svc := &mockTrainerService{
		getByIDFn: func(ctx context.Context, id string) (*domain.Trainer, error) {
			return nil, service.ErrTrainerNotFound
		},
		getAllFn: func(ctx context.Context) ([]domain.Trainer, error) {
			return []domain.Trainer{{Name: "Alex", Status: "active"}}, nil
		},
		updateFn: func(ctx context.Context, id string, tr *domain.Trainer) error {
			return domain.NewValidationError("status", "Invalid status. Use either 'active' or 'inactive'")
		},
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}
	router, _ := newTestRouter(t, Services{Trainers: svc})

	w := doRequest(t, router, http.MethodGet, "/api/trainers/x", nil, true)
	assertMessage(t, w, http.StatusNotFound, "Trainer not found")

	w = doRequest(t, router, http.MethodGet, "/api/trainers", nil, true)
	var list []domain.Trainer
	decodeBody(t, w, &list)
	if len(list) != 1 || list[0].Name != "Alex" {
		t.Errorf("list = %+v", list)
	}

	w = doRequest(t, router, http.MethodPut, "/api/trainers/x", TrainerRequest{Status: "retired"}, true)
	assertMessage(t, w, http.StatusBadRequest, "Invalid status. Use either 'active' or 'inactive'")

	w = doRequest(t, router, http.MethodDelete, "/api/trainers/x", nil, true)
	assertMessage(t, w, http.StatusOK, "Trainer deleted successfully")
}

func TestSearchTrainers(t *testing.T) {
	var got domain.TrainerFilter
	svc := &mockTrainerService{
		searchFn: func(ctx context.Context, f domain.TrainerFilter) ([]domain.Trainer, error) {
			got = f
			return []domain.Trainer{}, nil
		},
	}
	router, _ := newTestRouter(t, Services{Trainers: svc})

	w := doRequest(t, router, http.MethodGet, "/api/trainers/search?speciality=Yoga", nil, true)
	if w.Code != http.StatusOK || w.Body.String() != `{"trainers":[]}` {
		t.Errorf("got %d %s", w.Code, w.Body.String())
	}
	if got != (domain.TrainerFilter{Speciality: "Yoga"}) {
		t.Errorf("filter = %+v", got)
	}
}

func TestManageSchedule(t *testing.T) {
	var gotID string
	var gotSchedule []string
	svc := &mockTrainerService{
		scheduleFn: func(ctx context.Context, trainerID string, classIDs []string) error {
			if trainerID == "missing" {
				return service.ErrTrainerNotFound
			}
			gotID, gotSchedule = trainerID, classIDs
			return nil
		},
	}
	router, _ := newTestRouter(t, Services{Trainers: svc})

	w := doRequest(t, router, http.MethodPost, "/api/trainers/schedule", ScheduleRequest{TrainerID: "t1", ClassSchedule: []string{"c1", "c2"}}, true)
	assertMessage(t, w, http.StatusOK, "Trainer schedule updated successfully")
	if gotID != "t1" || !reflect.DeepEqual(gotSchedule, []string{"c1", "c2"}) {
		t.Errorf("service got (%q, %v)", gotID, gotSchedule)
	}

	w = doRequest(t, router, http.MethodPost, "/api/trainers/schedule", `{"trainerId":"t1"}`, true)
	assertMessage(t, w, http.StatusBadRequest, "Trainer ID and Class Schedule are required")

	w = doRequest(t, router, http.MethodPost, "/api/trainers/schedule", ScheduleRequest{TrainerID: "missing", ClassSchedule: []string{}}, true)
	assertMessage(t, w, http.StatusNotFound, "Trainer not found")
}
