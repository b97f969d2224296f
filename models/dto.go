package models

type AddCartItemRequest struct {
	CardID int `json:"card_id" form:"card_id" binding:"required,gt=0"`
}

type ChangeQuantityRequest struct {
	Delta *int `json:"delta" form:"delta" binding:"required,min=-1000,max=1000"`
}

type CartMutationResponse struct {
	Cart         CartView      `json:"cart"`
	Notification *Notification `json:"notification,omitempty"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
