package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/service"
)

type VehicleHandler struct {
	vehicleSvc service.VehicleService
}

func NewVehicleHandler(vehicleSvc service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleSvc: vehicleSvc}
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var v domain.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.vehicleSvc.AddVehicle(r.Context(), &v); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	v, err := h.vehicleSvc.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "vehicle not found")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	var v domain.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	v.ID = id
	if err := h.vehicleSvc.UpdateVehicle(r.Context(), &v); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	if err := h.vehicleSvc.DeleteVehicle(r.Context(), id); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeMessage(w, "Vehicle deleted")
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	stationID, err := strconv.ParseInt(q.Get("station_id"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "station_id is required")
		return
	}
	page, pageSize := pagination(q.Get("page"), q.Get("page_size"))

	vehicles, count, err := h.vehicleSvc.ListByStation(r.Context(), int32(stationID), q.Get("status"), page, pageSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"vehicles":    vehicles,
		"total_count": count,
	})
}
