package handlers

import (
	"net/http"

	"bunk-backend/internal/services"
	"bunk-backend/pkg/utils"
)

// writeServiceError maps a service error to its status class: caller
// mistakes are 400, everything else is a store fault and stays 500.
func writeServiceError(w http.ResponseWriter, err error) {
	if services.IsValidation(err) {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.Error(w, http.StatusInternalServerError, err.Error())
}
