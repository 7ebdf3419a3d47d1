package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"zassprint/internal/model"
	"zassprint/internal/service"
	"zassprint/internal/worker"
)

func SubmitOrderHandler(orderSvc *service.OrderService, alerts *worker.AlertDispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var in model.ThesisOrderInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in.ApplyDefaults()

		if fe := validateStruct(in); fe != nil {
			writeFieldErrors(w, fe)
			return
		}

		orderNo, err := orderSvc.Create(r.Context(), &in, time.Now())
		if err != nil {
			slog.Error("order create failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		alerts.Enqueue(worker.Alert{
			OrderNo: orderNo,
			Name:    service.NormalizeName(in.Name),
		})

		writeJSON(w, http.StatusOK, orderNo)
	}
}

func ListOrdersHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		orders, err := orderSvc.List(r.Context())
		if err != nil {
			slog.Error("list orders failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, orders)
	}
}

type deleteOrderRequest struct {
	OrderNo string `json:"orderNo" validate:"required,len=7"`
}

func DeleteOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req deleteOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if fe := validateStruct(req); fe != nil {
			writeFieldErrors(w, fe)
			return
		}

		if err := orderSvc.Delete(r.Context(), req.OrderNo); err != nil {
			slog.Error("delete order failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, struct{}{})
	}
}
