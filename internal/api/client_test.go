package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestErrorFromResponseExtractsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Credenciais inválidas"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	_, err := client.Login(context.Background(), "alice", "wrong")
	if err == nil {
		t.Fatal("expected error for 401 response")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", apiErr.Status, http.StatusUnauthorized)
	}
	if apiErr.Message != "Credenciais inválidas" {
		t.Errorf("message = %q, want server-provided message", apiErr.Message)
	}
}

func TestErrorFromResponseFallback(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"plain text body", http.StatusInternalServerError, "boom", "HTTP 500: Internal Server Error"},
		{"empty body", http.StatusNotFound, "", "HTTP 404: Not Found"},
		{"json without message", http.StatusBadRequest, `{"error":"nope"}`, "HTTP 400: Bad Request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := New(srv.URL, time.Second)
			_, err := client.GetUser(context.Background(), 1)
			if err == nil {
				t.Fatal("expected error")
			}
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if apiErr.Message != tt.want {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.want)
			}
		})
	}
}

func TestOnlineTracking(t *testing.T) {
	healthy := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	if client.Online() {
		t.Error("client should start offline until a probe succeeds")
	}

	if err := client.Health(context.Background()); err != nil {
		t.Fatalf("Health: %v", err)
	}
	if !client.Online() {
		t.Error("client should be online after successful probe")
	}

	healthy = false
	if err := client.Health(context.Background()); err == nil {
		t.Fatal("expected probe failure")
	}
	if client.Online() {
		t.Error("client should be offline after failed probe")
	}
}

func TestCompleteHabitUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/users/1/habits/7/complete" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"habitLog":{"id":99,"habitId":7,"completionDate":"2024-05-01"}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	log, err := client.CompleteHabit(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("CompleteHabit: %v", err)
	}
	if log.ID != 99 {
		t.Errorf("log id = %d, want 99", log.ID)
	}
	if log.HabitID() != 7 {
		t.Errorf("habit id = %d, want 7", log.HabitID())
	}
	if log.CompletionDate != "2024-05-01" {
		t.Errorf("completion date = %q", log.CompletionDate)
	}
}

func TestRedeemRewardUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"userReward":{"id":3,"rewardId":5,"acquisitionDate":"2024-05-01"}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	ur, err := client.RedeemReward(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("RedeemReward: %v", err)
	}
	if ur.RewardID() != 5 {
		t.Errorf("reward id = %d, want 5", ur.RewardID())
	}
}

func TestNonJSONSuccessReturnsRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	raw, err := client.do(context.Background(), http.MethodGet, "/ping", nil, nil)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if raw != "ok" {
		t.Errorf("raw body = %q, want %q", raw, "ok")
	}
}

func TestUserWireNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"username":"alice","xpAcumulado":120,"diasOfensiva":4}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	user, err := client.GetUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user.XP != 120 {
		t.Errorf("xp = %d, want 120", user.XP)
	}
	if user.Streak != 4 {
		t.Errorf("streak = %d, want 4", user.Streak)
	}
}
