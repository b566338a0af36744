package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type loginHits struct {
	manager int
	store   int
}

func loginServer(t *testing.T, hits *loginHits, managerOK, storeOK bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/stores/manager/login":
			hits.manager++
			if managerOK {
				json.NewEncoder(w).Encode(map[string]string{
					"role": "manager", "name": "Manager", "token": "mtok",
				})
				return
			}
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid manager credentials"})
		case "/stores/login":
			hits.store++
			if storeOK {
				json.NewEncoder(w).Encode(map[string]interface{}{
					"name": "Lawrence", "username": "lawrence", "total_boxes": 10, "token": "stok",
				})
				return
			}
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid one-time code"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestManagerLoginSkipsStorePath(t *testing.T) {
	var hits loginHits
	server := loginServer(t, &hits, true, false)
	defer server.Close()

	store := tempSessionStore(t)
	c := New(server.URL)

	result, err := c.Login(store, "manager", "mgr123", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Landing != LandingManager {
		t.Errorf("Landing = %q, want manager", result.Landing)
	}
	if result.Session.Role != "manager" || result.Session.Name != "Manager" {
		t.Errorf("session = %+v", result.Session)
	}
	if hits.store != 0 {
		t.Errorf("store endpoint hit %d times on a manager login", hits.store)
	}
	if loaded := store.Load(); loaded == nil || loaded.Role != "manager" {
		t.Errorf("session not persisted: %+v", loaded)
	}
}

func TestEmptyOTPShortCircuits(t *testing.T) {
	var hits loginHits
	server := loginServer(t, &hits, false, true)
	defer server.Close()

	store := tempSessionStore(t)
	c := New(server.URL)

	_, err := c.Login(store, "lawrence", "lawrence123", "")
	if err == nil {
		t.Fatal("expected error for empty OTP")
	}
	if hits.store != 0 {
		t.Errorf("store endpoint hit %d times despite empty OTP", hits.store)
	}
	var loginErr *LoginError
	if !errors.As(err, &loginErr) {
		t.Fatalf("expected *LoginError, got %T", err)
	}
	if !errors.Is(loginErr.StoreErr, ErrOTPRequired) {
		t.Errorf("StoreErr = %v, want ErrOTPRequired", loginErr.StoreErr)
	}
	if loginErr.ManagerErr == nil {
		t.Error("manager attempt failure not retained")
	}
}

func TestManagerFailureFallsThroughToStore(t *testing.T) {
	var hits loginHits
	server := loginServer(t, &hits, false, true)
	defer server.Close()

	store := tempSessionStore(t)
	c := New(server.URL)

	result, err := c.Login(store, "lawrence", "lawrence123", "cccccbtirncfjindhhuvlvhjjnkrbuejhhndlbnbllvh")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if hits.manager != 1 || hits.store != 1 {
		t.Errorf("hits = %+v, want one of each", hits)
	}
	if result.Landing != LandingStore {
		t.Errorf("Landing = %q, want store", result.Landing)
	}
	if result.Session.StoreID != "Lawrence" || result.Session.StoreName != "Lawrence" {
		t.Errorf("session = %+v", result.Session)
	}
}

func TestBothAttemptFailuresRetained(t *testing.T) {
	var hits loginHits
	server := loginServer(t, &hits, false, false)
	defer server.Close()

	store := tempSessionStore(t)
	c := New(server.URL)

	_, err := c.Login(store, "nobody", "wrong", "cccccbtirncfjindhhuvlvhjjnkrbuejhhndlbnbllvh")
	if err == nil {
		t.Fatal("expected error")
	}
	var loginErr *LoginError
	if !errors.As(err, &loginErr) {
		t.Fatalf("expected *LoginError, got %T", err)
	}
	if loginErr.ManagerErr == nil || loginErr.StoreErr == nil {
		t.Errorf("both failures should be retained: %+v", loginErr)
	}
	// The user-facing message is the store path's error.
	if loginErr.Error() != "Invalid one-time code" {
		t.Errorf("Error() = %q", loginErr.Error())
	}
}

func TestLogoutClearsSessionLocally(t *testing.T) {
	store := tempSessionStore(t)
	if err := store.Save(&Session{Role: "manager", Name: "Manager"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := Logout(store); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if sess := store.Load(); sess != nil {
		t.Fatalf("session survived logout: %+v", sess)
	}
}
