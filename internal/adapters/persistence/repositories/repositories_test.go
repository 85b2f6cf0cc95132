package repositories

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"classhub/internal/adapters/persistence/store"
	"classhub/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func TestCoreMemberPartialUpdateKeepsOtherFields(t *testing.T) {
	repo := NewCoreMemberRepository(store.NewStore())

	created := repo.Create(domain.CoreMember{
		Name:      "Anaya Wijaya",
		StudentID: "19210720",
		Role:      domain.RolePresident,
		ImageURL:  "https://example.com/anaya.jpg",
	})

	updated, err := repo.Update(created.ID, domain.CoreMemberPatch{
		Name: strPtr("Anaya W."),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Name != "Anaya W." {
		t.Fatalf("name not updated: %q", updated.Name)
	}
	if updated.StudentID != created.StudentID ||
		updated.Role != created.Role ||
		updated.ImageURL != created.ImageURL {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestUpdateAbsentReturnsNotFound(t *testing.T) {
	repo := NewClassMemberRepository(store.NewStore())

	_, err := repo.Update(42, domain.ClassMemberPatch{Name: strPtr("x")})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteThenGet(t *testing.T) {
	repo := NewAssignmentRepository(store.NewStore())
	a := repo.Create(domain.Assignment{Title: "Quiz", Type: domain.AssignmentIndividual})

	if err := repo.Delete(a.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.GetByID(a.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(a.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete should be ErrNotFound, got %v", err)
	}
}

func TestAnnouncementListNewestFirst(t *testing.T) {
	dates := []string{"2023-10-15", "2023-10-10", "2023-10-05", "2023-10-15"}

	// The sort must hold for any insertion permutation of the fixtures.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for trial := 0; trial < 5; trial++ {
		repo := NewAnnouncementRepository(store.NewStore())
		perm := rng.Perm(len(dates))
		for _, i := range perm {
			repo.Create(domain.Announcement{Date: dates[i], Title: "t", Status: "new"})
		}

		got := repo.List()
		for i := 1; i < len(got); i++ {
			if got[i-1].Date < got[i].Date {
				t.Fatalf("trial %d: dates out of order: %q before %q", trial, got[i-1].Date, got[i].Date)
			}
			if got[i-1].Date == got[i].Date && got[i-1].ID < got[i].ID {
				t.Fatalf("trial %d: equal dates must order by higher ID first", trial)
			}
		}
	}
}

func TestScheduleListWeekdayOrder(t *testing.T) {
	slots := []domain.Schedule{
		{Day: "Friday", StartTime: "08:00"},
		{Day: "Monday", StartTime: "13:00"},
		{Day: "Monday", StartTime: "08:00"},
		{Day: "Wednesday", StartTime: "08:00"},
		{Day: "Tuesday", StartTime: "10:15"},
	}

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 5; trial++ {
		repo := NewScheduleRepository(store.NewStore())
		for _, i := range rng.Perm(len(slots)) {
			repo.Create(slots[i])
		}

		got := repo.List()
		for i := 1; i < len(got); i++ {
			ri, rj := weekdayRank(got[i-1].Day), weekdayRank(got[i].Day)
			if ri > rj {
				t.Fatalf("trial %d: %s listed before %s", trial, got[i-1].Day, got[i].Day)
			}
			if ri == rj && got[i-1].StartTime > got[i].StartTime {
				t.Fatalf("trial %d: start times out of order on %s", trial, got[i].Day)
			}
		}
	}
}

func TestTransactionListNewestFirst(t *testing.T) {
	repo := NewTransactionRepository(store.NewStore())
	repo.Create(domain.Transaction{Date: "2023-09-20", Amount: 2500000, Type: domain.TransactionIncome})
	repo.Create(domain.Transaction{Date: "2023-10-12", Amount: 1900000, Type: domain.TransactionIncome})
	repo.Create(domain.Transaction{Date: "2023-10-05", Amount: 750000, Type: domain.TransactionExpense})

	got := repo.List()
	want := []string{"2023-10-12", "2023-10-05", "2023-09-20"}
	for i, d := range want {
		if got[i].Date != d {
			t.Fatalf("position %d: expected %s, got %s", i, d, got[i].Date)
		}
	}
}

func TestContactMessageCreateStampsCreatedAt(t *testing.T) {
	repo := NewContactMessageRepository(store.NewStore())

	before := time.Now().UTC()
	m := repo.Create(domain.ContactMessage{
		Name:    "Dewi",
		Email:   "dewi@example.com",
		Subject: "Hello",
		Message: "Hi there",
	})
	after := time.Now().UTC()

	if m.CreatedAt.Before(before) || m.CreatedAt.After(after) {
		t.Fatalf("createdAt %v outside [%v, %v]", m.CreatedAt, before, after)
	}
}

func TestUserGetByUsername(t *testing.T) {
	repo := NewUserRepository(store.NewStore())
	repo.Create(domain.User{Username: "admin", Password: "hashed"})

	u, err := repo.GetByUsername("admin")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if u.ID != 1 || u.Username != "admin" {
		t.Fatalf("unexpected user %+v", u)
	}

	if _, err := repo.GetByUsername("nobody"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
