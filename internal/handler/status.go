package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"zassprint/internal/model"
	"zassprint/internal/service"
)

func GetOrderStatusHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		n, err := strconv.Atoi(r.URL.Query().Get("orderNo"))
		if err != nil || n < 1000000 || n > 9999999 {
			writeFieldErrors(w, fieldErrors{"orderNo": "Order number must be 7 digits"})
			return
		}

		status, err := orderSvc.GetStatus(r.Context(), strconv.Itoa(n))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrOrderNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			default:
				slog.Error("get status failed", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}

type updateStatusRequest struct {
	OrderNo string `json:"orderNo" validate:"required,len=7"`
	Status  string `json:"status" validate:"required,oneof=Pending Confirmed Printed Delivered Cancelled"`
}

// UpdateOrderStatusHandler sets an order's status. An order number that
// matches nothing is a silent no-op, not an error.
func UpdateOrderStatusHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if fe := validateStruct(req); fe != nil {
			writeFieldErrors(w, fe)
			return
		}

		if err := orderSvc.UpdateStatus(r.Context(), req.OrderNo, model.OrderStatus(req.Status)); err != nil {
			slog.Error("update status failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, struct{}{})
	}
}
