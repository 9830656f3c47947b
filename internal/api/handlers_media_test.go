package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func multipartUploadRequest(t *testing.T, fileName string, content string, authHeader string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, "/api/media", body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	request.Header.Set(fiber.HeaderAuthorization, authHeader)
	return request
}

func TestUploadMediaStoresFileUnderUserNamespace(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestApp(t)
	user := createTestUser(t, database, "upload@example.com", "StrongPass1")
	auth := bearerHeaderForUser(t, handler, user)

	body := doJSON(t, app, multipartUploadRequest(t, "photo.jpg", "jpeg-bytes", auth), http.StatusCreated)

	url, _ := body["url"].(string)
	wantSuffix := fmt.Sprintf("/media/%d/photo.jpg", user.ID)
	if url == "" || url[len(url)-len(wantSuffix):] != wantSuffix {
		t.Fatalf("expected url ending in %q, got %q", wantSuffix, url)
	}

	stored, err := os.ReadFile(filepath.Join(handler.media.Root(), fmt.Sprintf("%d", user.ID), "photo.jpg"))
	if err != nil {
		t.Fatalf("read stored object: %v", err)
	}
	if string(stored) != "jpeg-bytes" {
		t.Fatalf("expected stored content preserved, got %q", stored)
	}
}

func TestUploadMediaOverwritesOnNameCollision(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestApp(t)
	user := createTestUser(t, database, "overwrite@example.com", "StrongPass1")
	auth := bearerHeaderForUser(t, handler, user)

	doJSON(t, app, multipartUploadRequest(t, "note.txt", "first version", auth), http.StatusCreated)
	doJSON(t, app, multipartUploadRequest(t, "note.txt", "second version", auth), http.StatusCreated)

	stored, err := os.ReadFile(filepath.Join(handler.media.Root(), fmt.Sprintf("%d", user.ID), "note.txt"))
	if err != nil {
		t.Fatalf("read stored object: %v", err)
	}
	if string(stored) != "second version" {
		t.Fatalf("expected overwrite to win, got %q", stored)
	}
}

func TestDeleteMediaRemovesObjectByURL(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestApp(t)
	user := createTestUser(t, database, "delete-media@example.com", "StrongPass1")
	auth := bearerHeaderForUser(t, handler, user)

	uploaded := doJSON(t, app, multipartUploadRequest(t, "gone.png", "pixels", auth), http.StatusCreated)
	url := uploaded["url"].(string)

	doJSON(t, app, jsonRequest(t, http.MethodDelete, "/api/media", map[string]any{
		"media_url": url,
	}, auth), http.StatusOK)

	objectPath := filepath.Join(handler.media.Root(), fmt.Sprintf("%d", user.ID), "gone.png")
	if _, err := os.Stat(objectPath); !os.IsNotExist(err) {
		t.Fatalf("expected object removed from disk, stat err=%v", err)
	}
}

func TestDeleteMediaMissingObjectReturnsNotFound(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestApp(t)
	user := createTestUser(t, database, "delete-missing-media@example.com", "StrongPass1")
	auth := bearerHeaderForUser(t, handler, user)

	body := doJSON(t, app, jsonRequest(t, http.MethodDelete, "/api/media", map[string]any{
		"media_url": "http://localhost:8080/media/1/never-uploaded.png",
	}, auth), http.StatusNotFound)

	if readAPIError(t, body) != "media object not found" {
		t.Fatalf("expected media not found error, got %q", readAPIError(t, body))
	}
}

func TestDeleteMediaScopedToSessionUser(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestApp(t)
	owner := createTestUser(t, database, "media-owner@example.com", "StrongPass1")
	other := createTestUser(t, database, "media-other@example.com", "StrongPass1")
	ownerAuth := bearerHeaderForUser(t, handler, owner)
	otherAuth := bearerHeaderForUser(t, handler, other)

	uploaded := doJSON(t, app, multipartUploadRequest(t, "private.jpg", "secret", ownerAuth), http.StatusCreated)
	url := uploaded["url"].(string)

	doJSON(t, app, jsonRequest(t, http.MethodDelete, "/api/media", map[string]any{
		"media_url": url,
	}, otherAuth), http.StatusNotFound)

	objectPath := filepath.Join(handler.media.Root(), fmt.Sprintf("%d", owner.ID), "private.jpg")
	if _, err := os.Stat(objectPath); err != nil {
		t.Fatalf("expected owner's object untouched, stat err=%v", err)
	}
}
