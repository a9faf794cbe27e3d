package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func RegisterRoutes(r chi.Router, svc *Service, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}

	// Los cuatro verbos van sobre la misma ruta; PUT y DELETE llevan el id en el body.
	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc, log))
		ar.Post("/", createAnimalHandler(svc, log))
		ar.Put("/", updateAnimalHandler(svc, log))
		ar.Delete("/", deleteAnimalHandler(svc, log))
	})
}

// listResponse es la respuesta de GET /animals.
type listResponse struct {
	Message string   `json:"message" example:"success"`
	Data    []Record `json:"data"`
}

// createResponse es la respuesta de POST /animals.
type createResponse struct {
	Message string `json:"message" example:"success"`
	ID      string `json:"id"`
}

// changesResponse es la respuesta de PUT y DELETE /animals.
type changesResponse struct {
	Message string `json:"message" example:"success"`
	Changes int64  `json:"changes"`
}

type deleteRequest struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Devuelve todos los registros en orden de inserción. No hay paginación.
// @Tags animals
// @Produce json
// @Success 200 {object} listResponse
// @Failure 500 {object} errorResponse "falla de storage"
// @Router /animals [get]
func listAnimalsHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, listResponse{Message: "success", Data: items})
	}
}

// createAnimalHandler godoc
// @Summary Crear animal
// @Description Crea un registro y le asigna un id. `type` es obligatorio. La foto va inline como data URL (body hasta 10MB por defecto).
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body Record true "Registro sin id"
// @Success 201 {object} createResponse
// @Failure 400 {object} errorResponse "invalid json / type is required"
// @Failure 413 {object} errorResponse "payload too large"
// @Failure 500 {object} errorResponse "falla de storage"
// @Router /animals [post]
func createAnimalHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Record
		if !decodeBody(w, r, &req) {
			return
		}

		id, err := svc.Create(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, createResponse{Message: "success", ID: id})
	}
}

// updateAnimalHandler godoc
// @Summary Reemplazar animal
// @Description Reemplaza todos los campos del registro con ese id. Si el id no existe responde changes=0 (no es error).
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body Record true "Registro completo con id"
// @Success 200 {object} changesResponse
// @Failure 400 {object} errorResponse "invalid json / id is required / type is required"
// @Failure 413 {object} errorResponse "payload too large"
// @Failure 500 {object} errorResponse "falla de storage"
// @Router /animals [put]
func updateAnimalHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Record
		if !decodeBody(w, r, &req) {
			return
		}

		n, err := svc.Update(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, changesResponse{Message: "success", Changes: n})
	}
}

// deleteAnimalHandler godoc
// @Summary Borrar animal
// @Description Borra el registro con ese id. Borrar dos veces es idempotente (changes=0).
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body deleteRequest true "id a borrar"
// @Success 200 {object} changesResponse
// @Failure 400 {object} errorResponse "invalid json / id is required"
// @Failure 500 {object} errorResponse "falla de storage"
// @Router /animals [delete]
func deleteAnimalHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deleteRequest
		if !decodeBody(w, r, &req) {
			return
		}

		n, err := svc.Delete(r.Context(), req.ID)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, changesResponse{Message: "deleted", Changes: n})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		// "validation error: type is required" -> "type is required"
		writeError(w, http.StatusBadRequest, strings.TrimPrefix(err.Error(), ErrValidation.Error()+": "))
	case errors.Is(err, ErrMissingID):
		writeError(w, http.StatusBadRequest, err.Error())
	case IsStorageError(err):
		log.Error("storage failure",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		log.Error("unexpected error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
