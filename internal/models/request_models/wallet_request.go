package request_models

type ProcessPaymentRequest struct {
	OrderID       string `json:"orderId" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	Amount        int64  `json:"amount" binding:"required"`
}

type TopUpRequest struct {
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Method string `json:"method" binding:"required,oneof=card bank_transfer ussd"`
}
