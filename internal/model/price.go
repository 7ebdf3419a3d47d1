package model

// Price row names as stored in the prices table.
const (
	PriceBlackWhite   = "blackWhite"
	PriceColor        = "color"
	PriceBinding      = "hardSoftBinding"
	PriceStickerLabel = "stickerLabel"
	PricePaperLabel   = "paperLabel"
	PriceDelivery     = "delivery"
)

type PriceEntry struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// PriceList is the full unit-price table as read from storage.
type PriceList []PriceEntry

// Lookup returns the amount for name and whether the row exists.
func (l PriceList) Lookup(name string) (float64, bool) {
	for _, p := range l {
		if p.Name == name {
			return p.Amount, true
		}
	}
	return 0, false
}

// PriceUpdate is the admin payload updating all six unit prices at once.
// The zero value is a legal price, so the fields carry no required rule.
type PriceUpdate struct {
	BlackWhite   float64 `json:"blackWhite" validate:"gte=0"`
	Color        float64 `json:"color" validate:"gte=0"`
	Binding      float64 `json:"binding" validate:"gte=0"`
	StickerLabel float64 `json:"stickerLabel" validate:"gte=0"`
	PaperLabel   float64 `json:"paperLabel" validate:"gte=0"`
	Delivery     float64 `json:"delivery" validate:"gte=0"`
}
