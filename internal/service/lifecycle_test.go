package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/models"
	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/service"
)

func TestAuthorize(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name string
		user models.User
		want service.Decision
	}{
		{"active, no expiry", models.User{}, service.Allowed},
		{"active, future expiry", models.User{ExpiryDate: &future}, service.Allowed},
		{"expired", models.User{ExpiryDate: &past}, service.Expired},
		{"blocked", models.User{IsBlocked: true}, service.Blocked},
		{"blocked wins over expiry", models.User{IsBlocked: true, ExpiryDate: &past}, service.Blocked},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := service.Authorize(&tc.user, now); got != tc.want {
				t.Errorf("Authorize = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCreate_ZeroActiveDaysExpiresImmediately(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(db)

	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	u, err := svc.Create(service.CreateUserInput{
		Name: "Day Guard", Email: "guard@example.com", Password: "x", ActiveDays: 0,
	}, t0)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ExpiryDate == nil || !u.ExpiryDate.Equal(t0) {
		t.Fatalf("expected expiry %v, got %v", t0, u.ExpiryDate)
	}

	if got := service.Authorize(u, t0.Add(time.Second)); got != service.Expired {
		t.Errorf("Authorize after expiry = %v, want Expired", got)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(db)
	now := time.Now().UTC()

	in := service.CreateUserInput{Name: "A", Email: "dup@example.com", Password: "x", ActiveDays: 30}
	if _, err := svc.Create(in, now); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	in.Name = "B"
	if _, err := svc.Create(in, now); !errors.Is(err, service.ErrDuplicateEmail) {
		t.Fatalf("second Create err = %v, want ErrDuplicateEmail", err)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 user persisted, got %d", count)
	}
}

func TestCreate_NormalizesEmail(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(db)

	u, err := svc.Create(service.CreateUserInput{
		Name: "A", Email: "  Guard@Example.COM ", Password: "x", ActiveDays: 1,
	}, time.Now().UTC())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.Email != "guard@example.com" {
		t.Errorf("email = %q, want normalized", u.Email)
	}
}

func TestAutoBlockExpired_IsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(db)
	now := time.Now().UTC()

	if _, err := svc.Create(service.CreateUserInput{Name: "old", Email: "old@x.com", Password: "x", ActiveDays: 0}, now.Add(-48*time.Hour)); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(service.CreateUserInput{Name: "fresh", Email: "fresh@x.com", Password: "x", ActiveDays: 30}, now); err != nil {
		t.Fatal(err)
	}

	n, err := svc.AutoBlockExpired(now)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if n != 1 {
		t.Fatalf("first sweep blocked %d, want 1", n)
	}

	n, err = svc.AutoBlockExpired(now)
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if n != 0 {
		t.Errorf("second sweep blocked %d, want 0", n)
	}

	old, err := svc.GetByEmail("old@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if !old.IsBlocked {
		t.Error("expected expired user to be flagged blocked")
	}
	fresh, err := svc.GetByEmail("fresh@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if fresh.IsBlocked {
		t.Error("fresh user must not be swept")
	}
}

func TestAuthorize_DoesNotDependOnSweep(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(db)
	now := time.Now().UTC()

	u, err := svc.Create(service.CreateUserInput{Name: "g", Email: "g@x.com", Password: "x", ActiveDays: 0}, now.Add(-time.Hour))
	if err != nil {
		t.Fatal(err)
	}

	// flag still false in storage, gate must reject anyway
	if u.IsBlocked {
		t.Fatal("precondition: not yet swept")
	}
	if got := service.Authorize(u, now); got != service.Expired {
		t.Errorf("Authorize = %v, want Expired before any sweep", got)
	}
}

func TestSetBlocked(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(db)

	u, err := svc.Create(service.CreateUserInput{Name: "g", Email: "g@x.com", Password: "x", ActiveDays: 30}, time.Now().UTC())
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.SetBlocked(u.ID, true); err != nil {
		t.Fatalf("SetBlocked: %v", err)
	}
	got, _ := svc.GetByID(u.ID)
	if !got.IsBlocked {
		t.Error("expected blocked flag set")
	}
	if got.ExpiryDate == nil {
		t.Error("SetBlocked must not touch expiry")
	}

	if err := svc.SetBlocked(u.ID, false); err != nil {
		t.Fatalf("unblock: %v", err)
	}
	got, _ = svc.GetByID(u.ID)
	if got.IsBlocked {
		t.Error("expected blocked flag cleared")
	}
}

func TestSetBlocked_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(db)

	if err := svc.SetBlocked(9999, true); !errors.Is(err, service.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
