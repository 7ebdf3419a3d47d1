package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"zassprint/internal/model"
	"zassprint/internal/service"
	"zassprint/internal/worker"
)

// Validation failures must reject before any storage access, so these run
// against a service with no live database behind it.
func TestSubmitOrderHandler_Validation(t *testing.T) {
	h := SubmitOrderHandler(service.NewOrderService(nil), worker.NewAlertDispatcher(nil))

	valid := map[string]any{
		"name":             "john doe",
		"phoneNumber":      "0123456789",
		"thesisType":       "Hard Cover",
		"coverColor":       "Dark Blue",
		"thesisTitle":      "A Study of Things",
		"faculty":          "Engineering",
		"year":             2025,
		"studyAcronym":     "BSc",
		"matrixNumber":     "A1234567",
		"colorPages":       10,
		"blackWhitePages":  80,
		"copies":           2,
		"cdBurn":           false,
		"collectionDate":   "2025-09-20",
		"collectionMethod": "Self Collection",
	}

	tests := []struct {
		name      string
		mutate    func(m map[string]any)
		wantField string
	}{
		{"missing name", func(m map[string]any) { m["name"] = "" }, "name"},
		{"short phone", func(m map[string]any) { m["phoneNumber"] = "12345" }, "phoneNumber"},
		{"year before 2025", func(m map[string]any) { m["year"] = 2024 }, "year"},
		{"short matrix number", func(m map[string]any) { m["matrixNumber"] = "A123" }, "matrixNumber"},
		{"negative color pages", func(m map[string]any) { m["colorPages"] = -1 }, "colorPages"},
		{"negative copies", func(m map[string]any) { m["copies"] = -1 }, "copies"},
		{"bad collection date", func(m map[string]any) { m["collectionDate"] = "20/09/2025" }, "collectionDate"},
		{"missing collection method", func(m map[string]any) { m["collectionMethod"] = "" }, "collectionMethod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := make(map[string]any, len(valid))
			for k, v := range valid {
				payload[k] = v
			}
			tt.mutate(payload)

			body, _ := json.Marshal(payload)
			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(string(body)))
			rec := httptest.NewRecorder()

			h(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %q)", rec.Code, rec.Body.String())
			}

			var resp struct {
				Errors map[string]string `json:"errors"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("response is not a field-error payload: %v", err)
			}
			if _, ok := resp.Errors[tt.wantField]; !ok {
				t.Errorf("errors = %v, want entry for %q", resp.Errors, tt.wantField)
			}
		})
	}
}

// A submission that leaves copies out entirely orders one copy; it must pass
// validation instead of being rejected for the missing field.
func TestSubmitOrder_OmittedCopiesDefaultsToOne(t *testing.T) {
	body := `{
		"name":             "john doe",
		"phoneNumber":      "0123456789",
		"thesisType":       "Hard Cover",
		"coverColor":       "Dark Blue",
		"thesisTitle":      "A Study of Things",
		"faculty":          "Engineering",
		"year":             2025,
		"studyAcronym":     "BSc",
		"matrixNumber":     "A1234567",
		"colorPages":       10,
		"blackWhitePages":  80,
		"collectionDate":   "2025-09-20",
		"collectionMethod": "Self Collection"
	}`

	var in model.ThesisOrderInput
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	in.ApplyDefaults()

	if fe := validateStruct(in); fe != nil {
		t.Fatalf("validateStruct() = %v, want no field errors", fe)
	}
	if in.Copies != 1 {
		t.Errorf("Copies = %d, want default 1", in.Copies)
	}
}

func TestGetOrderStatusHandler_ParamValidation(t *testing.T) {
	h := GetOrderStatusHandler(service.NewOrderService(nil))

	tests := []struct {
		name    string
		orderNo string
	}{
		{"missing", ""},
		{"not a number", "abcdefg"},
		{"too short", "123456"},
		{"too long", "12345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/orders/status?orderNo="+tt.orderNo, nil)
			rec := httptest.NewRecorder()

			h(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "Order number must be 7 digits") {
				t.Errorf("body = %q, want 7-digit message", rec.Body.String())
			}
		})
	}
}

func TestUpdateOrderStatusHandler_Validation(t *testing.T) {
	h := UpdateOrderStatusHandler(service.NewOrderService(nil))

	tests := []struct {
		name string
		body string
	}{
		{"short order number", `{"orderNo":"123","status":"Printed"}`},
		{"unknown status", `{"orderNo":"2509001","status":"Lost"}`},
		{"missing status", `{"orderNo":"2509001"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/orders/status", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %q)", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestUpdatePricesHandler_RejectsNegative(t *testing.T) {
	h := UpdatePricesHandler(service.NewPriceService(nil))

	body := `{"blackWhite":0.15,"color":-1,"binding":25,"stickerLabel":10,"paperLabel":5,"delivery":10}`
	req := httptest.NewRequest(http.MethodPost, "/prices", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %q)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not a field-error payload: %v", err)
	}
	if _, ok := resp.Errors["color"]; !ok {
		t.Errorf("errors = %v, want entry for color", resp.Errors)
	}
}
