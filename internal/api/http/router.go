package http

import (
	"net/http"

	"evrental-backend/internal/security"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Bookings      *BookingHandler
	Stations      *StationHandler
	Vehicles      *VehicleHandler
	Users         *UserHandler
	Notifications *NotificationHandler
	Files         *FileHandler
}

// NewRouter mounts the API under /api/v1. Registration, login and file
// downloads are public; everything else requires a valid access token.
func NewRouter(h Handlers, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	// Public routes.
	api.HandleFunc("/auth/register", h.Users.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Users.Login).Methods(http.MethodPost)
	api.HandleFunc("/files", h.Files.Download).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))

	// Bookings and the workflow operations.
	authed.HandleFunc("/bookings", h.Bookings.Create).Methods(http.MethodPost)
	authed.HandleFunc("/bookings", h.Bookings.List).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id}", h.Bookings.Get).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id}/steps", h.Bookings.Steps).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id}/confirm", h.Bookings.Confirm).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id}/cancel", h.Bookings.Cancel).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id}/contract", h.Bookings.UploadContract).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id}/contract", h.Bookings.DeleteContract).Methods(http.MethodDelete)
	authed.HandleFunc("/bookings/{id}/pre-rental", h.Bookings.PreRental).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id}/return", h.Bookings.Return).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id}/refund-summary", h.Bookings.RefundSummary).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id}/refund", h.Bookings.Refund).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id}/pay-additional", h.Bookings.PayAdditional).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id}/damage-report", h.Bookings.DamageReport).Methods(http.MethodPost)

	// Stations.
	authed.HandleFunc("/stations", h.Stations.Create).Methods(http.MethodPost)
	authed.HandleFunc("/stations", h.Stations.List).Methods(http.MethodGet)
	authed.HandleFunc("/stations/{id}", h.Stations.Get).Methods(http.MethodGet)
	authed.HandleFunc("/stations/{id}", h.Stations.Update).Methods(http.MethodPut)
	authed.HandleFunc("/stations/{id}", h.Stations.Delete).Methods(http.MethodDelete)

	// Vehicles.
	authed.HandleFunc("/vehicles", h.Vehicles.Create).Methods(http.MethodPost)
	authed.HandleFunc("/vehicles", h.Vehicles.List).Methods(http.MethodGet)
	authed.HandleFunc("/vehicles/{id}", h.Vehicles.Get).Methods(http.MethodGet)
	authed.HandleFunc("/vehicles/{id}", h.Vehicles.Update).Methods(http.MethodPut)
	authed.HandleFunc("/vehicles/{id}", h.Vehicles.Delete).Methods(http.MethodDelete)

	// Users.
	authed.HandleFunc("/users", h.Users.List).Methods(http.MethodGet)
	authed.HandleFunc("/users/{id}", h.Users.Get).Methods(http.MethodGet)
	authed.HandleFunc("/users/{id}/kyc", h.Users.UpdateKYC).Methods(http.MethodPut)

	// Notifications.
	authed.HandleFunc("/notifications", h.Notifications.List).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id}/read", h.Notifications.MarkAsRead).Methods(http.MethodPost)

	return router
}
