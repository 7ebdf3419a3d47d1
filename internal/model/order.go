package model

import (
	"encoding/json"
	"time"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusConfirmed OrderStatus = "Confirmed"
	StatusPrinted   OrderStatus = "Printed"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

// ThesisOrder is one persisted customer submission.
type ThesisOrder struct {
	ID               int64       `json:"id"`
	Name             string      `json:"name"`
	PhoneNumber      string      `json:"phoneNumber"`
	ThesisType       string      `json:"thesisType"`
	CoverColor       string      `json:"coverColor"`
	ThesisTitle      string      `json:"thesisTitle"`
	Faculty          string      `json:"faculty"`
	Year             int         `json:"year"`
	StudyAcronym     string      `json:"studyAcronym"`
	MatrixNumber     string      `json:"matrixNumber"`
	ColorPages       int         `json:"colorPages"`
	BlackWhitePages  int         `json:"blackWhitePages"`
	Copies           int         `json:"copies"`
	CDBurn           bool        `json:"cdBurn"`
	CDLabel          *string     `json:"cdLabel,omitempty"`
	CDCopies         *int        `json:"cdCopies,omitempty"`
	CollectionDate   time.Time   `json:"collectionDate"`
	CollectionMethod string      `json:"collectionMethod"`
	Address          *string     `json:"address,omitempty"`
	Status           OrderStatus `json:"status"`
	OrderNo          string      `json:"orderNo"`
	CreatedAt        time.Time   `json:"createdAt"`
}

func (o ThesisOrder) MarshalJSON() ([]byte, error) {
	type Alias ThesisOrder
	return json.Marshal(&struct {
		CollectionDate string `json:"collectionDate"`
		CreatedAt      string `json:"createdAt"`
		*Alias
	}{
		CollectionDate: o.CollectionDate.Format("2006-01-02"),
		CreatedAt:      o.CreatedAt.Format(time.RFC3339),
		Alias:          (*Alias)(&o),
	})
}

// ThesisOrderInput is the order-form payload. Order number, status and
// creation time are assigned server-side on intake.
type ThesisOrderInput struct {
	Name             string  `json:"name" validate:"required"`
	PhoneNumber      string  `json:"phoneNumber" validate:"required,min=10"`
	ThesisType       string  `json:"thesisType" validate:"required"`
	CoverColor       string  `json:"coverColor" validate:"required"`
	ThesisTitle      string  `json:"thesisTitle" validate:"required"`
	Faculty          string  `json:"faculty" validate:"required"`
	Year             int     `json:"year" validate:"required,gte=2025"`
	StudyAcronym     string  `json:"studyAcronym" validate:"required"`
	MatrixNumber     string  `json:"matrixNumber" validate:"required,min=8"`
	ColorPages       int     `json:"colorPages" validate:"gte=0"`
	BlackWhitePages  int     `json:"blackWhitePages" validate:"gte=0"`
	Copies           int     `json:"copies" validate:"gte=1"`
	CDBurn           bool    `json:"cdBurn"`
	CDLabel          *string `json:"cdLabel,omitempty"`
	CDCopies         *int    `json:"cdCopies,omitempty" validate:"omitempty,gte=0"`
	CollectionDate   string  `json:"collectionDate" validate:"required,datetime=2006-01-02"`
	CollectionMethod string  `json:"collectionMethod" validate:"required"`
	Address          *string `json:"address,omitempty"`
}

// ApplyDefaults fills optional submission fields before validation. A form
// that omits copies orders a single copy.
func (in *ThesisOrderInput) ApplyDefaults() {
	if in.Copies == 0 {
		in.Copies = 1
	}
}
