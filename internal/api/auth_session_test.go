package api

import (
	"net/http"
	"testing"

	"github.com/lotionhq/huddle/internal/models"
)

func TestBoardRequiresSession(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodGet, "/api/board/2026-05-04", nil, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", response.StatusCode)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "Alice", "alice@lotion.so", "password123", models.RoleMember)

	response := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "alice@lotion.so",
		"password": "wrong",
	}, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad credentials, got %d", response.StatusCode)
	}
}

func TestLoginReturnsUserAndSetsCookie(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "Alice", "alice@lotion.so", "password123", models.RoleAdmin)

	cookie := loginAndExtractAuthCookie(t, app, "alice@lotion.so", "password123")

	response := doJSON(t, app, http.MethodGet, "/api/board/2026-05-04", nil, cookie)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected authenticated board fetch to succeed, got %d", response.StatusCode)
	}
}

func TestPassphraseGateBlocksAPIUntilOpened(t *testing.T) {
	t.Parallel()

	app, database := newTestAppWithPassphrase(t, "sesame")
	createTestUser(t, database, "Alice", "alice@lotion.so", "password123", models.RoleMember)

	blocked := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "alice@lotion.so",
		"password": "password123",
	}, "")
	defer blocked.Body.Close()
	if blocked.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 behind passphrase gate, got %d", blocked.StatusCode)
	}

	wrong := doJSON(t, app, http.MethodPost, "/api/auth/passphrase", map[string]string{"passphrase": "open"}, "")
	defer wrong.Body.Close()
	if wrong.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong passphrase, got %d", wrong.StatusCode)
	}

	right := doJSON(t, app, http.MethodPost, "/api/auth/passphrase", map[string]string{"passphrase": "sesame"}, "")
	defer right.Body.Close()
	if right.StatusCode != http.StatusOK {
		t.Fatalf("expected passphrase accepted, got %d", right.StatusCode)
	}

	var gateCookie string
	for _, cookie := range right.Cookies() {
		if cookie.Name == passphraseCookieName {
			gateCookie = cookie.Name + "=" + cookie.Value
		}
	}
	if gateCookie == "" {
		t.Fatalf("expected perimeter cookie")
	}

	opened := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "alice@lotion.so",
		"password": "password123",
	}, gateCookie)
	defer opened.Body.Close()
	if opened.StatusCode != http.StatusOK {
		t.Fatalf("expected login behind opened gate to succeed, got %d", opened.StatusCode)
	}
}
