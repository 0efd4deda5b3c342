package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/creatorhub/userform-api/internal/core/domain"
	"github.com/creatorhub/userform-api/internal/core/ports"
)

type stubFormService struct {
	submitFn func(ctx context.Context, input ports.SubmitFormInput) (*domain.FormSubmission, error)
	listFn   func(ctx context.Context) ([]*domain.FormSubmission, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubFormService) Submit(ctx context.Context, input ports.SubmitFormInput) (*domain.FormSubmission, error) {
	return s.submitFn(ctx, input)
}

func (s *stubFormService) List(ctx context.Context) ([]*domain.FormSubmission, error) {
	return s.listFn(ctx)
}

func (s *stubFormService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubFileStore struct {
	saved []string
	err   error
}

func (s *stubFileStore) Save(originalName string, r io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	name := "stored-" + strconv.Itoa(len(s.saved)) + "-" + originalName
	s.saved = append(s.saved, name)
	return name, nil
}

func newMultipartRequest(t *testing.T, fields map[string]string, images []string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for _, name := range images {
		fw, err := w.CreateFormFile(formFieldImages, name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("image-bytes")); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/user-form", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func newAuthedContext(e *echo.Echo, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "id-1")
	c.Set("role", domain.RoleUser)
	return c, rec
}

func TestFormHandler_Submit_Success(t *testing.T) {
	e := echo.New()
	store := &stubFileStore{}
	var got ports.SubmitFormInput
	svc := &stubFormService{
		submitFn: func(ctx context.Context, input ports.SubmitFormInput) (*domain.FormSubmission, error) {
			got = input
			return &domain.FormSubmission{ID: "form-1"}, nil
		},
	}
	handler := NewFormHandler(svc, store, zerolog.Nop())

	req := newMultipartRequest(t,
		map[string]string{"username": "alice", "socialMedia": "@alice"},
		[]string{"a.png", "b.jpg", "c.gif"},
	)
	c, rec := newAuthedContext(e, req)

	if err := handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Username != "alice" || got.SocialMedia != "@alice" {
		t.Fatalf("unexpected fields: %+v", got)
	}
	if len(got.Images) != 3 {
		t.Fatalf("expected 3 stored images, got %d", len(got.Images))
	}
	// Stored names must keep the upload order.
	for i, name := range got.Images {
		if name != store.saved[i] {
			t.Fatalf("image order not preserved at %d: %s vs %s", i, name, store.saved[i])
		}
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User submitted successfully!" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestFormHandler_Submit_NoFiles(t *testing.T) {
	e := echo.New()
	store := &stubFileStore{}
	svc := &stubFormService{
		submitFn: func(ctx context.Context, input ports.SubmitFormInput) (*domain.FormSubmission, error) {
			if len(input.Images) != 0 {
				t.Fatalf("expected empty images, got %v", input.Images)
			}
			return &domain.FormSubmission{ID: "form-1"}, nil
		},
	}
	handler := NewFormHandler(svc, store, zerolog.Nop())

	req := newMultipartRequest(t, map[string]string{"username": "bob", "socialMedia": "@bob"}, nil)
	c, rec := newAuthedContext(e, req)

	if err := handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestFormHandler_Submit_StoreFailure(t *testing.T) {
	e := echo.New()
	store := &stubFileStore{err: errors.New("disk full")}
	svc := &stubFormService{
		submitFn: func(ctx context.Context, input ports.SubmitFormInput) (*domain.FormSubmission, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewFormHandler(svc, store, zerolog.Nop())

	req := newMultipartRequest(t, map[string]string{"username": "bob"}, []string{"a.png"})
	c, rec := newAuthedContext(e, req)

	_ = handler.Submit(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Error submitting user data" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestFormHandler_Submit_PersistFailure(t *testing.T) {
	e := echo.New()
	store := &stubFileStore{}
	svc := &stubFormService{
		submitFn: func(ctx context.Context, input ports.SubmitFormInput) (*domain.FormSubmission, error) {
			return nil, errors.New("store down")
		},
	}
	handler := NewFormHandler(svc, store, zerolog.Nop())

	req := newMultipartRequest(t, map[string]string{"username": "bob"}, []string{"a.png"})
	c, rec := newAuthedContext(e, req)

	_ = handler.Submit(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestFormHandler_Details(t *testing.T) {
	e := echo.New()
	svc := &stubFormService{
		listFn: func(ctx context.Context) ([]*domain.FormSubmission, error) {
			return []*domain.FormSubmission{
				{ID: "form-1", Username: "alice", Images: []string{"1.png"}},
				{ID: "form-2", Username: "bob", Images: []string{}},
			}, nil
		},
	}
	handler := NewFormHandler(svc, &stubFileStore{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/details", nil)
	c, rec := newAuthedContext(e, req)

	if err := handler.Details(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success=true")
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 2 {
		t.Fatalf("expected 2 forms, got %v", resp["data"])
	}
}

func TestFormHandler_Details_StoreError(t *testing.T) {
	e := echo.New()
	svc := &stubFormService{
		listFn: func(ctx context.Context) ([]*domain.FormSubmission, error) {
			return nil, errors.New("store down")
		},
	}
	handler := NewFormHandler(svc, &stubFileStore{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/details", nil)
	c, rec := newAuthedContext(e, req)

	_ = handler.Details(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestFormHandler_Delete_Success(t *testing.T) {
	e := echo.New()
	svc := &stubFormService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "form-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	handler := NewFormHandler(svc, &stubFileStore{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodDelete, "/delete/form-1", nil)
	c, rec := newAuthedContext(e, req)
	c.SetParamNames("id")
	c.SetParamValues("form-1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User form deleted successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestFormHandler_Delete_NotFound(t *testing.T) {
	e := echo.New()
	svc := &stubFormService{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrFormNotFound
		},
	}
	handler := NewFormHandler(svc, &stubFileStore{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodDelete, "/delete/missing", nil)
	c, rec := newAuthedContext(e, req)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = handler.Delete(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User form not found" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}
