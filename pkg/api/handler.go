package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	log "github.com/sirupsen/logrus"

	"projecttracker/pkg/store"
	"projecttracker/pkg/tracker"
)

// Handler serves the tracker API against a single backing sheet.
type Handler struct {
	store store.RowStore
}

func NewHandler(st store.RowStore) *Handler {
	return &Handler{store: st}
}

func (h *Handler) getProjects(w http.ResponseWriter, r *http.Request) {
	snap, err := tracker.GetRecords(h.store)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, projectsResponse{Headers: snap.Headers, Data: snap.Records})
}

func (h *Handler) getFilterOptions(w http.ResponseWriter, r *http.Request) {
	filters, err := tracker.FilterOptions(h.store)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, filters)
}

func (h *Handler) getSummaryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := tracker.SummaryStats(h.store)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, stats)
}

func (h *Handler) getProjectsByMonth(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		badRequest(w, r, "month must be between 1 and 12")
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		badRequest(w, r, "year must be a number")
		return
	}
	records, err := tracker.ProjectsByMonth(h.store, month, year)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, recordsResponse{Records: records})
}

func (h *Handler) addProject(w http.ResponseWriter, r *http.Request) {
	var req addProjectRequest
	if err := decodeAndValidate(r, &req); err != nil {
		badRequest(w, r, "invalid request body: "+err.Error())
		return
	}
	if len(req.Fields) == 0 {
		badRequest(w, r, "fields must not be empty")
		return
	}
	rowIndex, err := tracker.AddRecord(h.store, req.Fields)
	if err != nil {
		renderError(w, r, err)
		return
	}
	log.Debugf("added project at row %d", rowIndex)
	render.JSON(w, r, successResponse{Success: true, RowIndex: rowIndex})
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	rowIndex, ok := rowIndexParam(w, r)
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := decodeAndValidate(r, &req); err != nil {
		badRequest(w, r, "invalid request body: "+err.Error())
		return
	}
	if err := tracker.UpdateStatus(h.store, rowIndex, req.Status); err != nil {
		renderError(w, r, err)
		return
	}
	log.Debugf("updated status of row %d to %q", rowIndex, req.Status)
	render.JSON(w, r, successResponse{Success: true})
}

func (h *Handler) updateCell(w http.ResponseWriter, r *http.Request) {
	rowIndex, ok := rowIndexParam(w, r)
	if !ok {
		return
	}
	var req updateCellRequest
	if err := decodeAndValidate(r, &req); err != nil {
		badRequest(w, r, "invalid request body: "+err.Error())
		return
	}
	if err := tracker.UpdateCell(h.store, rowIndex, req.Field, req.Value); err != nil {
		renderError(w, r, err)
		return
	}
	log.Debugf("updated field %q of row %d", req.Field, rowIndex)
	render.JSON(w, r, successResponse{Success: true})
}

func rowIndexParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	rowIndex, err := strconv.Atoi(chi.URLParam(r, "rowIndex"))
	if err != nil || rowIndex < 1 {
		badRequest(w, r, "rowIndex must be a positive number")
		return 0, false
	}
	return rowIndex, true
}

// renderError converts a tracker error into the {error} payload the client
// expects. Faults never propagate past this boundary.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch err.(type) {
	case *tracker.NotFoundError, *tracker.ColumnNotFoundError:
		status = http.StatusNotFound
	case *tracker.WriteError:
		status = http.StatusBadGateway
	}
	log.Warnf("%s %s failed: %v", r.Method, r.URL.Path, err)
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: err.Error()})
}

func badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, errorResponse{Error: msg})
}
