package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/service"

	"github.com/gorilla/mux"
)

type StationHandler struct {
	stationSvc service.StationService
}

func NewStationHandler(stationSvc service.StationService) *StationHandler {
	return &StationHandler{stationSvc: stationSvc}
}

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	return int32(id), err
}

func (h *StationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var s domain.Station
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.stationSvc.CreateStation(r.Context(), &s); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

func (h *StationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid station id")
		return
	}
	s, err := h.stationSvc.GetStation(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "station not found")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *StationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid station id")
		return
	}
	var s domain.Station
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.ID = id
	if err := h.stationSvc.UpdateStation(r.Context(), &s); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *StationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid station id")
		return
	}
	if err := h.stationSvc.DeleteStation(r.Context(), id); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeMessage(w, "Station deleted")
}

func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	stations, err := h.stationSvc.ListStations(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"stations": stations})
}
