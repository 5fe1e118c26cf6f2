package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/models"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/output"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/render"
)

const svgContentType = "image/svg+xml"

// Handler serves the chart page and its API.
type Handler struct {
	session *Session
}

// NewHandler creates a Handler for session.
func NewHandler(session *Session) *Handler {
	return &Handler{session: session}
}

// Router returns the routes of the chart server.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", h.HandlePage).Methods(http.MethodGet)
	r.HandleFunc("/chart.svg", h.HandleSVG).Methods(http.MethodGet)
	r.HandleFunc("/chart.png", h.HandlePNG).Methods(http.MethodGet)
	r.HandleFunc("/api/select", h.HandleSelect).Methods(http.MethodPost)
	r.HandleFunc("/api/resize", h.HandleResize).Methods(http.MethodPost)
	r.HandleFunc("/api/records", h.HandleRecords).Methods(http.MethodGet)
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	return r
}

// HandlePage serves the HTML page with the current chart inside .chart.
func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	svg, err := h.session.SVG()
	if err != nil {
		log.Printf("Error rendering chart: %v", err)
		http.Error(w, "Error rendering chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = pageTemplate.Execute(w, pageData{
		Title:      "COVID-19 Vaccinations vs. New Cases",
		Responsive: h.session.Options().IsResponsive(),
		SVG:        inline(svg),
	})
	if err != nil {
		log.Printf("Error writing page: %v", err)
	}
}

// HandleSVG serves the current chart as a standalone SVG document.
func (h *Handler) HandleSVG(w http.ResponseWriter, r *http.Request) {
	svg, err := h.session.SVG()
	if err != nil {
		log.Printf("Error rendering chart: %v", err)
		http.Error(w, "Error rendering chart", http.StatusInternalServerError)
		return
	}
	writeSVG(w, svg)
}

// HandlePNG serves a static PNG snapshot of the current chart.
func (h *Handler) HandlePNG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	if err := render.PNG(w, h.session.Snapshot()); err != nil {
		log.Printf("Error rendering png: %v", err)
		http.Error(w, "Error rendering png", http.StatusInternalServerError)
	}
}

// HandleSelect switches the x axis to the field query parameter.
// It answers 204 when the field is already shown and 400 for unknown fields.
func (h *Handler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	field, err := models.ParseField(r.URL.Query().Get("field"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	svg, changed, err := h.session.Select(field)
	if err != nil {
		log.Printf("Error selecting %s: %v", field, err)
		http.Error(w, "Error rendering chart", http.StatusInternalServerError)
		return
	}
	if !changed {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeSVG(w, svg)
}

// HandleResize rebuilds the chart for the window given by the width and
// height query parameters. A superseded rebuild answers 409, a failed load 502.
func (h *Handler) HandleResize(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	width, err := strconv.Atoi(params.Get("width"))
	if err != nil || width <= 0 {
		http.Error(w, "width must be a positive integer", http.StatusBadRequest)
		return
	}
	height, err := strconv.Atoi(params.Get("height"))
	if err != nil || height <= 0 {
		http.Error(w, "height must be a positive integer", http.StatusBadRequest)
		return
	}

	svg, err := h.session.Resize(r.Context(), width, height)
	switch {
	case errors.Is(err, vaxscatter.ErrStaleRebuild):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		log.Printf("Error rebuilding chart: %v", err)
		http.Error(w, "Error loading data", http.StatusBadGateway)
		return
	}
	writeSVG(w, svg)
}

// HandleRecords serves the loaded records as JSON.
func (h *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	data, err := output.ToJSON(h.session.Snapshot().Records, false)
	if err != nil {
		http.Error(w, "Error encoding records", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func writeSVG(w http.ResponseWriter, svg []byte) {
	w.Header().Set("Content-Type", svgContentType)
	w.Write(svg)
}
