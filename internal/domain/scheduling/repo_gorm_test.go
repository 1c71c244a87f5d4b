package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clinic/clinic/internal/domain/identity"
	"github.com/clinic/clinic/internal/platform/apperr"
	"github.com/clinic/clinic/internal/platform/auth"
	"github.com/clinic/clinic/internal/platform/db/dbtest"
)

func TestAppointmentRepoGorm(t *testing.T) {
	gdb := dbtest.Open(t, &identity.User{}, &Appointment{})
	ctx := context.Background()

	users := identity.NewUserRepoGorm(gdb)
	patient := &identity.User{Name: "P", Email: "p@example.com", Password: "hash", Role: auth.RolePatient}
	doctor := &identity.User{Name: "D", Email: "d@example.com", Password: "hash", Role: auth.RoleDoctor}
	for _, u := range []*identity.User{patient, doctor} {
		if err := users.Create(ctx, u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}

	repo := NewAppointmentRepoGorm(gdb)
	a := &Appointment{PatientID: patient.ID, DoctorID: doctor.ID, Date: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), Time: "10:00"}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("create: %v", err)
	}

	bad := &Appointment{PatientID: patient.ID, DoctorID: 99999, Date: a.Date, Time: "10:00"}
	if err := repo.Create(ctx, bad); !errors.Is(err, apperr.ErrReference) {
		t.Errorf("expected ErrReference, got %v", err)
	}

	if _, err := repo.FindOne(ctx, Scope{ID: a.ID, DoctorID: patient.ID}); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected scoped lookup to miss, got %v", err)
	}

	list, err := repo.ListByDoctor(ctx, doctor.ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("list by doctor: %v %d", err, len(list))
	}
	if list[0].Patient == nil || list[0].Patient.ID != patient.ID || list[0].Doctor != nil {
		t.Errorf("expected patient joined only, got %+v", list[0])
	}

	desc := "x"
	found, _ := repo.FindOne(ctx, Scope{ID: a.ID})
	if err := (AppointmentUpdate{Description: &desc}).Apply(found); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := repo.Save(ctx, found); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, _ := repo.FindOne(ctx, Scope{ID: a.ID, PatientID: patient.ID})
	if again.Description != "x" || again.Time != "10:00" {
		t.Errorf("unexpected stored appointment %+v", again)
	}

	if err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}

	// a stale copy must not bring the row back
	if err := repo.Save(ctx, again); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound saving a deleted appointment, got %v", err)
	}
	if _, err := repo.FindOne(ctx, Scope{ID: a.ID}); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("deleted appointment came back: %v", err)
	}
}
