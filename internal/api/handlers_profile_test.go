package api

import (
	"net/http"
	"testing"
)

func TestUpdateMyProfilePersistsNameAndAvatar(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestApp(t)
	user := createTestUser(t, database, "profile-update@example.com", "StrongPass1")
	auth := bearerHeaderForUser(t, handler, user)

	updated := doJSON(t, app, jsonRequest(t, http.MethodPut, "/api/profiles/me", map[string]any{
		"full_name":  "Renamed Person",
		"avatar_url": "http://localhost:8080/media/1/avatar.png",
	}, auth), http.StatusOK)

	if updated["full_name"] != "Renamed Person" {
		t.Fatalf("expected full name updated, got %v", updated["full_name"])
	}

	fetched := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/profiles/me", nil, auth), http.StatusOK)
	if fetched["full_name"] != "Renamed Person" {
		t.Fatalf("expected update persisted, got %v", fetched["full_name"])
	}
	if fetched["avatar_url"] != "http://localhost:8080/media/1/avatar.png" {
		t.Fatalf("expected avatar persisted, got %v", fetched["avatar_url"])
	}
}

func TestSearchUsersMatchesEmailFragmentAndExcludesSelf(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestApp(t)
	searcher := createTestUser(t, database, "finder@corp.example.com", "StrongPass1")
	createTestUser(t, database, "alice@corp.example.com", "StrongPass1")
	createTestUser(t, database, "bob@other.example.org", "StrongPass1")
	auth := bearerHeaderForUser(t, handler, searcher)

	body := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/profiles/search?email=corp", nil, auth), http.StatusOK)
	results := body["results"].([]any)
	if len(results) != 1 {
		t.Fatalf("expected only the other corp user, got %d results", len(results))
	}
	if results[0].(map[string]any)["email"] != "alice@corp.example.com" {
		t.Fatalf("expected alice in results, got %v", results[0])
	}
}

func TestSearchUsersWithEmptyQueryReturnsNothing(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestApp(t)
	searcher := createTestUser(t, database, "empty-query@example.com", "StrongPass1")
	createTestUser(t, database, "somebody@example.com", "StrongPass1")
	auth := bearerHeaderForUser(t, handler, searcher)

	body := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/profiles/search", nil, auth), http.StatusOK)
	if len(body["results"].([]any)) != 0 {
		t.Fatalf("expected empty results for blank query, got %v", body["results"])
	}
}
