package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/cardform/internal/api"
	"github.com/DanielPopoola/cardform/internal/application"
	"github.com/DanielPopoola/cardform/internal/application/services"
	"github.com/DanielPopoola/cardform/internal/interfaces/rest"
	"github.com/gorilla/mux"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handlers implements the OpenAPI StrictServerInterface and serves the HTML
// form. Each browser gets its own form controller, found through the session
// cookie.
type Handlers struct {
	sessions   *services.SessionStore
	logger     *slog.Logger
	templates  *template.Template
	cookieName string
}

func NewHandlers(
	sessions *services.SessionStore,
	cookieName string,
	logger *slog.Logger,
) (*Handlers, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Handlers{
		sessions:   sessions,
		logger:     logger,
		templates:  tmpl,
		cookieName: cookieName,
	}, nil
}

// Ensure Handlers implements StrictServerInterface
var _ api.StrictServerInterface = (*Handlers)(nil)

// RegisterRoutes mounts the page, the generated API routes and the API
// document on r.
func (h *Handlers) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.ShowForm).Methods(http.MethodGet)
	r.HandleFunc("/", h.PostForm).Methods(http.MethodPost)

	strictHandler := api.NewStrictHandlerWithOptions(
		h,
		[]api.StrictMiddlewareFunc{h.withSession},
		api.StrictHTTPServerOptions{
			RequestErrorHandlerFunc:  h.requestError,
			ResponseErrorHandlerFunc: h.responseError,
		},
	)
	api.HandlerWithOptions(strictHandler, api.GorillaServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: h.requestError,
	})
	api.RegisterDocsRoutes(r)
}

func (h *Handlers) requestError(w http.ResponseWriter, _ *http.Request, err error) {
	rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
}

func (h *Handlers) responseError(w http.ResponseWriter, _ *http.Request, err error) {
	rest.WriteError(w, err, h.logger)
}
