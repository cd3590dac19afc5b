package response_models

import (
	"gidimart/internal/models/db_models"
	"gidimart/internal/repositories"
	"gidimart/pkg/utils"
)

type OrderResponse struct {
	ID              string `json:"id"`
	BuyerID         string `json:"buyerId"`
	SellerID        string `json:"sellerId"`
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	UnitPrice       int64  `json:"unitPrice"`
	TotalAmount     int64  `json:"totalAmount"`
	AmountPaid      int64  `json:"amountPaid"`
	Outstanding     int64  `json:"outstandingAmount"`
	Status          string `json:"status"`
	EscrowStatus    string `json:"escrowStatus"`
	PaymentType     string `json:"paymentType"`
	InstallmentPlan int    `json:"installmentPlan"`
	PaymentStatus   string `json:"paymentStatus"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`

	ProductTitle   string   `json:"productTitle,omitempty"`
	ProductImages  []string `json:"productImages,omitempty"`
	OtherPartyName string   `json:"otherPartyName,omitempty"`
}

func NewOrderResponse(o *db_models.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID.String(),
		BuyerID:         o.BuyerID.String(),
		SellerID:        o.SellerID.String(),
		ProductID:       o.ProductID.String(),
		Quantity:        o.Quantity,
		UnitPrice:       o.UnitPrice,
		TotalAmount:     o.TotalAmount,
		AmountPaid:      o.AmountPaid,
		Outstanding:     o.Outstanding(),
		Status:          string(o.Status),
		EscrowStatus:    string(o.EscrowStatus),
		PaymentType:     string(o.PaymentType),
		InstallmentPlan: o.InstallmentPlan,
		PaymentStatus:   string(o.PaymentStatus),
		CreatedAt:       utils.FormatRFC3339(o.CreatedAt),
		UpdatedAt:       utils.FormatRFC3339(o.UpdatedAt),
	}
}

func NewOrderRowResponses(rows []repositories.OrderRow) []OrderResponse {
	out := make([]OrderResponse, 0, len(rows))
	for i := range rows {
		resp := NewOrderResponse(&rows[i].Order)
		resp.ProductTitle = rows[i].ProductTitle
		resp.ProductImages = rows[i].ProductImages
		resp.OtherPartyName = rows[i].OtherPartyName
		out = append(out, resp)
	}
	return out
}
