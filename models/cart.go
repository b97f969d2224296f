package models

// LineItem is one catalog id's aggregated quantity and the unit price recorded when it was first added.
type LineItem struct {
	ID         int `json:"id"`
	UnitAmount int `json:"unit_amount"`
	Quantity   int `json:"quantity"`
}

func (l LineItem) LineTotal() int {
	return l.UnitAmount * l.Quantity
}

type CartLineView struct {
	ID                 int    `json:"id"`
	UnitAmount         int    `json:"unit_amount"`
	FormattedUnit      string `json:"formatted_unit_amount"`
	Quantity           int    `json:"quantity"`
	LineTotal          int    `json:"line_total"`
	FormattedLineTotal string `json:"formatted_line_total"`
}

type CartView struct {
	Items          []CartLineView `json:"items"`
	TotalAmount    int            `json:"total_amount"`
	TotalQuantity  int            `json:"total_quantity"`
	FormattedTotal string         `json:"formatted_total"`
}
