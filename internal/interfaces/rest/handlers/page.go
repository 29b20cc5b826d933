package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/DanielPopoola/cardform/internal/application"
	"github.com/DanielPopoola/cardform/internal/application/services"
	"github.com/DanielPopoola/cardform/internal/domain"
)

const actionSubmit = "submit"

var templateFuncs = template.FuncMap{
	"selected": func(current, option int) bool { return current == option },
}

type pageData struct {
	View         services.FormView
	MaxCardNoLen int
	MaxCVVLen    int
}

func (h *Handlers) ShowForm(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	data := pageData{
		View:         sess.Controller.View(),
		MaxCardNoLen: domain.MaxCardNoLength,
		MaxCVVLen:    domain.MaxCVVLength,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, "layout.html", data); err != nil {
		h.logger.Error("failed to render form", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// PostForm applies the posted fields one by one, submits when asked to and
// redirects back to the page. Rejected input leaves that field unchanged.
func (h *Handlers) PostForm(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	if err := r.ParseForm(); err != nil {
		h.logger.Warn("unreadable form post", "error", err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	for _, field := range domain.Fields() {
		values, ok := r.PostForm[string(field)]
		if !ok || len(values) == 0 {
			continue
		}
		if err := sess.Controller.Update(field, values[0]); err != nil {
			h.logger.Warn("field update rejected",
				"session_id", sess.ID,
				"field", field,
				"error", err)
		}
	}

	if r.PostForm.Get("action") == actionSubmit {
		err := sess.Controller.Submit(r.Context())
		if err != nil && !errors.Is(err, application.ErrFormInvalid) && !errors.Is(err, application.ErrFormIncomplete) {
			h.logger.Error("submit failed", "session_id", sess.ID, "error", err)
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
