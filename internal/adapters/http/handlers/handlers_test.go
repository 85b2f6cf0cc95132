package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"classhub/internal/adapters/http/middleware"
	"classhub/internal/adapters/http/routes"
	"classhub/internal/adapters/persistence/store"
	"classhub/internal/config"
	"classhub/internal/core/domain"
	"classhub/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T, seed bool) *fiber.App {
	t.Helper()

	s := store.NewStore()
	if seed {
		if err := config.NewSeeder(s).Run(); err != nil {
			t.Fatalf("seeding failed: %v", err)
		}
	}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	routes.Setup(app, s, &config.Config{AppMode: "dev", Port: "0"})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestListSeededCoreMembers(t *testing.T) {
	app := newTestApp(t, true)

	resp := doJSON(t, app, http.MethodGet, "/api/core-members", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var members []domain.CoreMember
	decode(t, resp, &members)
	if len(members) != 3 {
		t.Fatalf("expected 3 core members, got %d", len(members))
	}
	if members[0].ID != 1 || members[0].Role != domain.RolePresident {
		t.Fatalf("unexpected first member %+v", members[0])
	}
}

func TestGetAbsentReturns404(t *testing.T) {
	app := newTestApp(t, false)

	resp := doJSON(t, app, http.MethodGet, "/api/announcements/99", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var body map[string]interface{}
	decode(t, resp, &body)
	if body["message"] == "" {
		t.Fatal("404 body should carry a message")
	}
}

func TestNonNumericIDReturns400(t *testing.T) {
	app := newTestApp(t, false)

	resp := doJSON(t, app, http.MethodGet, "/api/schedules/abc", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCreateValidationErrors(t *testing.T) {
	app := newTestApp(t, false)

	resp := doJSON(t, app, http.MethodPost, "/api/core-members", map[string]interface{}{
		"name": "No Role",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var body struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	decode(t, resp, &body)
	for _, field := range []string{"studentId", "role", "imageUrl"} {
		if body.Errors[field] == "" {
			t.Errorf("expected validation error for %q, got %v", field, body.Errors)
		}
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	app := newTestApp(t, false)

	resp := doJSON(t, app, http.MethodPost, "/api/class-members", map[string]interface{}{
		"name":      "Dewi Anggraini",
		"studentId": "19210723",
		"imageUrl":  "https://example.com/dewi.jpg",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var created domain.ClassMember
	decode(t, resp, &created)
	if created.ID != 1 {
		t.Fatalf("first record should get ID 1, got %d", created.ID)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/class-members/1", nil)
	var got domain.ClassMember
	decode(t, resp, &got)
	if got != created {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, created)
	}
}

func TestPartialUpdatePreservesOtherFields(t *testing.T) {
	app := newTestApp(t, true)

	resp := doJSON(t, app, http.MethodPut, "/api/assignments/1", map[string]interface{}{
		"submitted": 20,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var updated domain.Assignment
	decode(t, resp, &updated)
	if updated.Submitted != 20 {
		t.Fatalf("submitted = %d, want 20", updated.Submitted)
	}
	if updated.Title != "Cryptography Implementation" || updated.Total != 38 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestDeleteSemanticsOverHTTP(t *testing.T) {
	app := newTestApp(t, true)

	resp := doJSON(t, app, http.MethodDelete, "/api/schedules/1", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodDelete, "/api/schedules/1", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/schedules/1", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", resp.StatusCode)
	}
}

func TestSchedulesListedInWeekdayOrder(t *testing.T) {
	app := newTestApp(t, true)

	resp := doJSON(t, app, http.MethodGet, "/api/schedules", nil)
	var slots []domain.Schedule
	decode(t, resp, &slots)

	if len(slots) != 7 {
		t.Fatalf("expected 7 slots, got %d", len(slots))
	}
	lastRank, lastStart := -1, ""
	for _, slot := range slots {
		rank := domain.WeekdayIndex(slot.Day)
		if rank < lastRank {
			t.Fatalf("%s listed after a later weekday", slot.Day)
		}
		if rank == lastRank && slot.StartTime < lastStart {
			t.Fatalf("start times out of order on %s", slot.Day)
		}
		lastRank, lastStart = rank, slot.StartTime
	}
}

func TestAnnouncementsNewestFirst(t *testing.T) {
	app := newTestApp(t, true)

	resp := doJSON(t, app, http.MethodGet, "/api/announcements", nil)
	var items []domain.Announcement
	decode(t, resp, &items)

	for i := 1; i < len(items); i++ {
		if items[i-1].Date < items[i].Date {
			t.Fatalf("announcements out of order: %s before %s", items[i-1].Date, items[i].Date)
		}
	}
}

func TestTransactionCreateReflectsInSummary(t *testing.T) {
	app := newTestApp(t, true)

	var before services.FinanceSummary
	decode(t, doJSON(t, app, http.MethodGet, "/api/finance-summary", nil), &before)

	resp := doJSON(t, app, http.MethodPost, "/api/transactions", map[string]interface{}{
		"amount":      500000,
		"type":        "expense",
		"description": "Test",
		"category":    "other",
		"date":        "2024-01-01",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var created domain.Transaction
	decode(t, resp, &created)
	if created.ID == 0 {
		t.Fatal("created transaction should carry an id")
	}
	if created.Status != "completed" {
		t.Fatalf("status should default to completed, got %q", created.Status)
	}

	var after services.FinanceSummary
	decode(t, doJSON(t, app, http.MethodGet, "/api/finance-summary", nil), &after)

	if after.TotalExpenses != before.TotalExpenses+500000 {
		t.Fatalf("totalExpenses = %v, want %v", after.TotalExpenses, before.TotalExpenses+500000)
	}
	if after.TotalBalance != before.TotalBalance-500000 {
		t.Fatalf("totalBalance = %v, want %v", after.TotalBalance, before.TotalBalance-500000)
	}
}

func TestSeededFinanceSummaryFigures(t *testing.T) {
	app := newTestApp(t, true)

	var summary services.FinanceSummary
	decode(t, doJSON(t, app, http.MethodGet, "/api/finance-summary", nil), &summary)

	// Seed ledger: 1,900,000 + 2,500,000 + 1,900,000 + 1,300,000 income;
	// 750,000 + 450,000 + 1,200,000 + 350,000 expenses.
	if summary.TotalIncome != 7600000 {
		t.Errorf("totalIncome = %v, want 7600000", summary.TotalIncome)
	}
	if summary.TotalExpenses != 2750000 {
		t.Errorf("totalExpenses = %v, want 2750000", summary.TotalExpenses)
	}
	if summary.TotalBalance != 4850000 {
		t.Errorf("totalBalance = %v, want 4850000", summary.TotalBalance)
	}
}

func TestContactFormStampsCreatedAt(t *testing.T) {
	app := newTestApp(t, false)

	resp := doJSON(t, app, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Dewi",
		"email":   "dewi@example.com",
		"subject": "Question",
		"message": "When are dues collected?",
		"urgent":  true,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var m domain.ContactMessage
	decode(t, resp, &m)
	if m.CreatedAt.IsZero() {
		t.Fatal("createdAt should be server-stamped")
	}
	if !m.Urgent {
		t.Fatal("urgent flag lost")
	}
}

func TestContactFormRejectsBadEmail(t *testing.T) {
	app := newTestApp(t, false)

	resp := doJSON(t, app, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Dewi",
		"email":   "not-an-email",
		"subject": "x",
		"message": "y",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t, false)

	for _, path := range []string{"/", "/health"} {
		resp := doJSON(t, app, http.MethodGet, path, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s status = %d, want 200", path, resp.StatusCode)
		}
	}
}
