package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"fyyur/internal/data/repository"
	"fyyur/internal/dto/request"
	"fyyur/internal/dto/response"
	"fyyur/pkg/render"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type stubVenueService struct {
	detail    *response.VenueDetail
	form      *request.VenueForm
	createErr error
	updateErr error
	deleteErr error
}

func (s *stubVenueService) ListVenues(context.Context) ([]response.VenueArea, error) {
	return nil, nil
}

func (s *stubVenueService) SearchVenues(_ context.Context, term string) (*response.SearchResults, error) {
	return &response.SearchResults{}, nil
}

func (s *stubVenueService) GetVenueByID(context.Context, string) (*response.VenueDetail, error) {
	if s.detail == nil {
		return nil, repository.ErrNotFound
	}
	return s.detail, nil
}

func (s *stubVenueService) GetVenueForm(context.Context, string) (*request.VenueForm, error) {
	if s.form == nil {
		return nil, repository.ErrNotFound
	}
	return s.form, nil
}

func (s *stubVenueService) CreateVenue(context.Context, *request.VenueForm) error {
	return s.createErr
}

func (s *stubVenueService) UpdateVenue(context.Context, string, *request.VenueForm) error {
	return s.updateErr
}

func (s *stubVenueService) DeleteVenue(context.Context, string) error {
	return s.deleteErr
}

func testRouter(t *testing.T, svc *stubVenueService) *chi.Mux {
	t.Helper()

	engine, err := render.NewEngine("../../web/templates", "test-secret", zap.NewNop())
	if err != nil {
		t.Fatalf("NewEngine error: %v", err)
	}

	h := NewVenueHandler(svc, engine, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/venues", h.ListVenues)
	r.Get("/venues/create", h.CreateVenueForm)
	r.Post("/venues/create", h.CreateVenueSubmit)
	r.Get("/venues/{id}", h.GetVenue)
	r.Delete("/venues/{id}", h.DeleteVenue)
	r.Get("/venues/{id}/edit", h.EditVenueForm)
	r.Post("/venues/{id}/edit", h.EditVenueSubmit)
	return r
}

func postForm(router http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetVenue_NotFoundRenders404(t *testing.T) {
	router := testRouter(t, &stubVenueService{})

	req := httptest.NewRequest(http.MethodGet, "/venues/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "404") {
		t.Error("body does not contain the 404 page")
	}
}

func TestGetVenue_RendersDetail(t *testing.T) {
	router := testRouter(t, &stubVenueService{
		detail: &response.VenueDetail{Name: "The Musical Hop", UpcomingShowsCount: 1},
	})

	req := httptest.NewRequest(http.MethodGet, "/venues/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "The Musical Hop") {
		t.Error("body does not contain the venue name")
	}
}

func TestCreateVenueSubmit_InvalidFormKeepsValues(t *testing.T) {
	router := testRouter(t, &stubVenueService{})

	// State missing, everything else filled in.
	values := url.Values{
		"name":    {"The Musical Hop"},
		"city":    {"San Francisco"},
		"address": {"1015 Folsom Street"},
		"genres":  {"Jazz"},
	}
	rec := postForm(router, "/venues/create", values)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "The Musical Hop") {
		t.Error("entered values were discarded on validation failure")
	}
	if !strings.Contains(rec.Body.String(), "This field is required") {
		t.Error("field error message not rendered")
	}
}

func TestCreateVenueSubmit_ServiceFailureFlashesAndRendersHome(t *testing.T) {
	router := testRouter(t, &stubVenueService{createErr: repository.ErrConstraint})

	values := url.Values{
		"name":    {"The Musical Hop"},
		"city":    {"San Francisco"},
		"state":   {"CA"},
		"address": {"1015 Folsom Street"},
		"genres":  {"Jazz"},
	}
	rec := postForm(router, "/venues/create", values)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	// Flash is queued in the cookie for the rendered page.
	if len(rec.Result().Cookies()) == 0 {
		t.Error("no flash cookie was set")
	}
}

func TestEditVenueSubmit_RedirectsToDetail(t *testing.T) {
	router := testRouter(t, &stubVenueService{form: &request.VenueForm{}})

	values := url.Values{
		"name":    {"The Musical Hop"},
		"city":    {"San Francisco"},
		"state":   {"CA"},
		"address": {"1015 Folsom Street"},
		"genres":  {"Jazz"},
	}
	rec := postForm(router, "/venues/abc/edit", values)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/venues/abc" {
		t.Errorf("Location = %q, want /venues/abc", loc)
	}
}

func TestEditVenueForm_NotFoundRenders404(t *testing.T) {
	router := testRouter(t, &stubVenueService{})

	req := httptest.NewRequest(http.MethodGet, "/venues/missing/edit", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestEditVenueForm_PrePopulatesFromStoredVenue(t *testing.T) {
	router := testRouter(t, &stubVenueService{
		form: &request.VenueForm{Name: "The Musical Hop", State: "CA", Genres: []string{"Jazz"}},
	})

	req := httptest.NewRequest(http.MethodGet, "/venues/abc/edit", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `value="The Musical Hop"`) {
		t.Error("form not pre-populated with stored venue name")
	}
}

func TestDeleteVenue_NotFound(t *testing.T) {
	router := testRouter(t, &stubVenueService{deleteErr: repository.ErrNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/venues/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
