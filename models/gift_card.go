package models

// GiftCard is a purchasable denomination. The cart never mutates it.
type GiftCard struct {
	ID        int  `json:"id"`
	FaceValue int  `json:"face_value"`
	Popular   bool `json:"popular"`
}

type GiftCardView struct {
	GiftCard
	FormattedAmount string `json:"formatted_amount"`
}
