package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"zassprint/internal/model"
	"zassprint/internal/service"
)

func ListPricesHandler(priceSvc *service.PriceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		prices, err := priceSvc.List(r.Context())
		if err != nil {
			slog.Error("list prices failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, prices)
	}
}

func UpdatePricesHandler(priceSvc *service.PriceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req model.PriceUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if fe := validateStruct(req); fe != nil {
			writeFieldErrors(w, fe)
			return
		}

		if err := priceSvc.UpdateAll(r.Context(), &req); err != nil {
			slog.Error("update prices failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, struct{}{})
	}
}
