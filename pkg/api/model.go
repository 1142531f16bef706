package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"projecttracker/pkg/tracker"
)

var validate = validator.New()

type projectsResponse struct {
	Headers []tracker.Header `json:"headers"`
	Data    []tracker.Record `json:"data"`
}

type recordsResponse struct {
	Records []tracker.Record `json:"records"`
}

type successResponse struct {
	Success  bool `json:"success"`
	RowIndex int  `json:"rowIndex,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type updateCellRequest struct {
	Field string      `json:"field" validate:"required"`
	Value interface{} `json:"value"`
}

type addProjectRequest struct {
	Fields tracker.Record `json:"fields" validate:"required"`
}

func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}
