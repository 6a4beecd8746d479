package animals

import (
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
	log = log.With(map[string]any{"collection": "animals"})

	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc, log))
		ar.Post("/", createAnimalHandler(svc, log))

		// ids no numéricos no matchean => 404
		ar.Get("/{id:[0-9]+}", getAnimalHandler(svc, log))
		ar.Put("/{id:[0-9]+}", updateAnimalHandler(svc, log))
		ar.Delete("/{id:[0-9]+}", deleteAnimalHandler(svc, log))
	})
}

type animalRequest struct {
	// En POST se ignora: el store asigna ids. En PUT solo se acepta si coincide con el path.
	ID                  *int    `json:"id,omitempty"`
	Species             *string `json:"species,omitempty"`
	Age                 *int    `json:"age,omitempty"`
	Gender              *string `json:"gender,omitempty"`
	SpecialRequirements *string `json:"special_requirements,omitempty"`
}

type animalResponse struct {
	ID                  int    `json:"id"`
	Species             string `json:"species"`
	Age                 int    `json:"age"`
	Gender              string `json:"gender"`
	SpecialRequirements string `json:"special_requirements"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type resultResponse struct {
	Result string `json:"result"`
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Devuelve la colección completa en orden de inserción.
// @Tags animals
// @Produce json
// @Success 200 {array} animalResponse
// @Failure 500 {object} errorResponse
// @Router /animals [get]
func listAnimalsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, log, err)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal por id
// @Tags animals
// @Produce json
// @Param id path int true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /animals/{id} [get]
func getAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// createAnimalHandler godoc
// @Summary Crear animal
// @Description `species` es requerido y único. Defaults: age=0, gender="Unknown", special_requirements="".
// @Tags animals
// @Accept json
// @Produce json
// @Param body body animalRequest true "Animal"
// @Success 201 {object} animalResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse "species ya existe"
// @Failure 500 {object} errorResponse
// @Router /animals [post]
func createAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req animalRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Species:             req.Species,
			Age:                 req.Age,
			Gender:              req.Gender,
			SpecialRequirements: req.SpecialRequirements,
		})
		if err != nil {
			writeServiceError(w, log, err)
			return
		}

		log.Info("animal created", map[string]any{"id": a.ID, "species": a.Species})
		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Actualizar animal
// @Description Update parcial: solo se pisan los campos enviados. `id` no se puede cambiar.
// @Tags animals
// @Accept json
// @Produce json
// @Param id path int true "ID del animal"
// @Param body body animalRequest true "Campos a actualizar"
// @Success 200 {object} animalResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /animals/{id} [put]
func updateAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req animalRequest
		if decodeErr := decodeBody(w, r, &req); decodeErr != nil {
			// 404 tiene prioridad sobre body inválido
			if _, err := svc.GetByID(r.Context(), id); err != nil {
				writeServiceError(w, log, err)
				return
			}
			writeError(w, http.StatusBadRequest, "invalid json: "+decodeErr.Error())
			return
		}

		a, err := svc.Update(r.Context(), id, UpdateInput{
			ID:                  req.ID,
			Species:             req.Species,
			Age:                 req.Age,
			Gender:              req.Gender,
			SpecialRequirements: req.SpecialRequirements,
		})
		if err != nil {
			writeServiceError(w, log, err)
			return
		}

		log.Info("animal updated", map[string]any{"id": a.ID})
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// deleteAnimalHandler godoc
// @Summary Borrar animal
// @Tags animals
// @Produce json
// @Param id path int true "ID del animal"
// @Success 200 {object} resultResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /animals/{id} [delete]
func deleteAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, log, err)
			return
		}

		log.Info("animal deleted", map[string]any{"id": id})
		writeJSON(w, http.StatusOK, resultResponse{Result: "Animal deleted"})
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:                  a.ID,
		Species:             a.Species,
		Age:                 a.Age,
		Gender:              a.Gender,
		SpecialRequirements: a.SpecialRequirements,
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "animal not found")
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	// un solo valor JSON por body
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
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
