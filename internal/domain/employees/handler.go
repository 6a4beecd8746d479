package employees

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"zoo-records/internal/domain/records"
	"zoo-records/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

var errTrailingData = errors.New("body must contain a single JSON value")

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	log = log.With(map[string]any{"collection": "employees"})

	r.Route("/employees", func(er chi.Router) {
		er.Get("/", listEmployeesHandler(svc, log))
		er.Post("/", createEmployeeHandler(svc, log))

		er.Get("/{id:[0-9]+}", getEmployeeHandler(svc, log))
		er.Put("/{id:[0-9]+}", updateEmployeeHandler(svc, log))
		er.Delete("/{id:[0-9]+}", deleteEmployeeHandler(svc, log))
	})
}

type employeeRequest struct {
	ID          *int    `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Role        *string `json:"role,omitempty"`
	Schedule    any     `json:"schedule,omitempty"`
}

type employeeResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	Schedule    any    `json:"schedule" swaggertype:"object"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type resultResponse struct {
	Result string `json:"result"`
}

// listEmployeesHandler godoc
// @Summary Listar empleados
// @Tags employees
// @Produce json
// @Success 200 {array} employeeResponse
// @Failure 500 {object} errorResponse
// @Router /employees [get]
func listEmployeesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, log, err)
			return
		}

		out := make([]employeeResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEmployeeResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getEmployeeHandler godoc
// @Summary Obtener empleado por id
// @Tags employees
// @Produce json
// @Param id path int true "ID del empleado"
// @Success 200 {object} employeeResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /employees/{id} [get]
func getEmployeeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		e, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toEmployeeResponse(e))
	}
}

// createEmployeeHandler godoc
// @Summary Crear empleado
// @Description `name` es requerido y único. Defaults: email="", phone_number="Unknown", role="", schedule=null.
// @Tags employees
// @Accept json
// @Produce json
// @Param body body employeeRequest true "Empleado"
// @Success 201 {object} employeeResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse "name ya existe"
// @Failure 500 {object} errorResponse
// @Router /employees [post]
func createEmployeeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, _, err := decodeEmployeeBody(w, r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
			return
		}

		e, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Role:        req.Role,
			Schedule:    req.Schedule,
		})
		if err != nil {
			writeServiceError(w, log, err)
			return
		}

		log.Info("employee created", map[string]any{"id": e.ID})
		writeJSON(w, http.StatusCreated, toEmployeeResponse(e))
	}
}

// updateEmployeeHandler godoc
// @Summary Actualizar empleado
// @Description Update parcial. `schedule: null` limpia el horario. `id` no se puede cambiar.
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "ID del empleado"
// @Param body body employeeRequest true "Campos a actualizar"
// @Success 200 {object} employeeResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /employees/{id} [put]
func updateEmployeeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		req, scheduleSet, decodeErr := decodeEmployeeBody(w, r)
		if decodeErr != nil {
			if _, err := svc.GetByID(r.Context(), id); err != nil {
				writeServiceError(w, log, err)
				return
			}
			writeError(w, http.StatusBadRequest, "invalid json: "+decodeErr.Error())
			return
		}

		e, err := svc.Update(r.Context(), id, UpdateInput{
			ID:          req.ID,
			Name:        req.Name,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Role:        req.Role,
			Schedule:    req.Schedule,
			ScheduleSet: scheduleSet,
		})
		if err != nil {
			writeServiceError(w, log, err)
			return
		}

		log.Info("employee updated", map[string]any{"id": e.ID})
		writeJSON(w, http.StatusOK, toEmployeeResponse(e))
	}
}

// deleteEmployeeHandler godoc
// @Summary Borrar empleado
// @Tags employees
// @Produce json
// @Param id path int true "ID del empleado"
// @Success 200 {object} resultResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /employees/{id} [delete]
func deleteEmployeeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, log, err)
			return
		}

		log.Info("employee deleted", map[string]any{"id": id})
		writeJSON(w, http.StatusOK, resultResponse{Result: "Employee deleted"})
	}
}

// decodeEmployeeBody decodifica el body y además detecta si "schedule" vino
// (aunque sea null), para poder diferenciar "limpiar" de "no tocar".
func decodeEmployeeBody(w http.ResponseWriter, r *http.Request) (employeeRequest, bool, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return employeeRequest{}, false, err
	}

	var req employeeRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return employeeRequest{}, false, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return employeeRequest{}, false, errTrailingData
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return employeeRequest{}, false, err
	}
	_, scheduleSet := fields["schedule"]

	return req, scheduleSet, nil
}

func toEmployeeResponse(e Employee) employeeResponse {
	return employeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
		Role:        e.Role,
		Schedule:    e.Schedule,
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "employee not found")
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, log logger.Logger, err error) {
	switch {
	case errors.Is(err, records.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, records.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, records.ErrDuplicate):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.Error("record store failure", map[string]any{"error": err.Error()})
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
