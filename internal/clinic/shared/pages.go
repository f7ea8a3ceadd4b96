package shared

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vetclinic/vetclinic/internal/platform/httpx"
	internalShared "github.com/vetclinic/vetclinic/internal/shared"
	"github.com/vetclinic/vetclinic/internal/view"
)

// Pages bundles what every clinic handler needs to answer a browser request.
type Pages struct {
	Logger    *slog.Logger
	Templates *view.Engine
	CSRF      *internalShared.CSRFManager
}

// Render writes template with the session's CSRF token and pending flash.
func (p *Pages) Render(w http.ResponseWriter, r *http.Request, template, title string, data map[string]any, status int) {
	sess := internalShared.SessionFrom(r.Context())
	var csrfToken string
	var flash *internalShared.FlashMessage
	if sess != nil {
		token, err := p.CSRF.EnsureToken(sess)
		if err != nil {
			p.Logger.Error("ensure csrf token", "error", err)
		}
		csrfToken = token
		flash = sess.PopFlash()
	}
	viewData := view.TemplateData{
		Title:       title,
		CSRFToken:   csrfToken,
		Flash:       flash,
		CurrentPath: r.URL.Path,
		Data:        data,
	}
	if err := p.Templates.Render(w, status, template, viewData); err != nil {
		p.Logger.Error("render template", "error", err, "template", template)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// RedirectWithFlash queues a flash message and sends a 303 to location.
func (p *Pages) RedirectWithFlash(w http.ResponseWriter, r *http.Request, location, kind, message string) {
	if sess := internalShared.SessionFrom(r.Context()); sess != nil {
		sess.AddFlash(internalShared.FlashMessage{Kind: kind, Message: message})
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// Fail answers a request that cannot continue. Unexpected errors are logged.
func (p *Pages) Fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrInvalidID) {
		p.Logger.Error(op+" failed", "error", err, "path", r.URL.Path)
	}
	httpx.RespondError(w, err)
}
