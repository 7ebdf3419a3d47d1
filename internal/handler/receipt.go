package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"zassprint/internal/receipt"
	"zassprint/internal/service"
)

func ReceiptHandler(orderSvc *service.OrderService, priceSvc *service.PriceService, renderer *receipt.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		orderNo := chi.URLParam(r, "orderNo")

		order, err := orderSvc.GetByOrderNo(r.Context(), orderNo)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrOrderNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			default:
				slog.Error("fetch order failed", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		prices, err := priceSvc.List(r.Context())
		if err != nil {
			slog.Error("list prices failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		pdfBytes, err := renderer.Render(order, prices)
		if err != nil {
			slog.Error("render receipt failed", "order_no", orderNo, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
		w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="receipt-%s.pdf"`, order.OrderNo))
		if _, err := w.Write(pdfBytes); err != nil {
			slog.Error("write receipt failed", "error", err)
		}
	}
}
