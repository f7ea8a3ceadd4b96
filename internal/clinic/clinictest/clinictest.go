// Package clinictest holds fixtures shared by the clinic handler tests.
package clinictest

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/vetclinic/vetclinic/internal/clinic/shared"
	internalShared "github.com/vetclinic/vetclinic/internal/shared"
	"github.com/vetclinic/vetclinic/internal/view"
)

// Today is the fixed date every clinic test runs on.
var Today = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

// Clock returns Today.
func Clock() time.Time { return Today }

// Validator returns a validator pinned to Today.
func Validator() *shared.Validator {
	return shared.NewValidator(Clock)
}

// Pages builds a responder backed by the embedded templates and a silent
// logger.
func Pages(t testing.TB) *shared.Pages {
	t.Helper()
	engine, err := view.NewEngine()
	require.NoError(t, err)
	return &shared.Pages{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Templates: engine,
		CSRF:      internalShared.NewCSRFManager("test-csrf-secret"),
	}
}

// Router mounts routes under prefix the same way the application does.
func Router(prefix string, mount func(chi.Router)) http.Handler {
	r := chi.NewRouter()
	r.Route(prefix, mount)
	return r
}

// Get performs a GET against h.
func Get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

// PostForm submits values as an urlencoded form.
func PostForm(h http.Handler, target string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
