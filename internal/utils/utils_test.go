package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"PATHFINDER_BACK-END/internal/dto"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2025-03-14", "2025-03-14", false},
		{" 2025-03-14 ", "2025-03-14", false},
		{"2025-03-14T22:30:00+07:00", "2025-03-14", false},
		{"14/03/2025", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) err = %v; wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && FormatDate(got) != tt.want {
			t.Errorf("ParseDate(%q) = %s; want %s", tt.in, FormatDate(got), tt.want)
		}
	}
}

func TestDaysInclusive(t *testing.T) {
	start := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	if got := DaysInclusive(start, start); got != 1 {
		t.Errorf("same day = %d; want 1", got)
	}
	if got := DaysInclusive(start, start.AddDate(0, 0, 2)); got != 3 {
		t.Errorf("three days = %d; want 3", got)
	}
}

func TestUserContext(t *testing.T) {
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Error("empty context should carry no user")
	}
	id := uuid.New()
	ctx := WithUser(context.Background(), id, "a@example.com")
	got, ok := GetUserIDFromContext(ctx)
	if !ok || got != id {
		t.Errorf("GetUserIDFromContext = %v, %v; want %v", got, ok, id)
	}
	if email, _ := GetEmailFromContext(ctx); email != "a@example.com" {
		t.Errorf("email = %q", email)
	}
}

type sample struct {
	Name  string   `json:"name" validate:"required"`
	Count int      `json:"count" validate:"min=1,max=10"`
	Tags  []string `json:"tags" validate:"max=2"`
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"valid", `{"name":"x","count":2}`, http.StatusOK, ""},
		{"empty body", ``, http.StatusBadRequest, "empty"},
		{"malformed", `{"name":`, http.StatusBadRequest, "Invalid"},
		{"unknown field", `{"name":"x","count":2,"extra":1}`, http.StatusBadRequest, "extra"},
		{"wrong type", `{"name":"x","count":"two"}`, http.StatusBadRequest, "count"},
		{"trailing data", `{"name":"x","count":2}{}`, http.StatusBadRequest, "single"},
		{"missing name", `{"count":2}`, http.StatusBadRequest, "name is required"},
		{"count too high", `{"name":"x","count":11}`, http.StatusBadRequest, "count must be at most 10"},
		{"too many tags", `{"name":"x","count":1,"tags":["a","b","c"]}`, http.StatusBadRequest, "tags"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			var v sample
			if err := DecodeAndValidate(rec, req, &v); err != nil {
				if rec.Code != tt.wantStatus {
					t.Fatalf("status = %d; want %d", rec.Code, tt.wantStatus)
				}
				var body dto.ErrorResponse
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatalf("decode error body: %v", err)
				}
				if !strings.Contains(body.Message, tt.wantMsg) {
					t.Errorf("message = %q; want it to contain %q", body.Message, tt.wantMsg)
				}
				return
			}
			if tt.wantStatus != http.StatusOK {
				t.Errorf("expected failure with status %d", tt.wantStatus)
			}
		})
	}
}
