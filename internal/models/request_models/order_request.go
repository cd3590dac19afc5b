package request_models

type CreateOrderRequest struct {
	ProductID       string `json:"productId" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required"`
	PaymentType     string `json:"paymentType"`
	InstallmentPlan int    `json:"installmentPlan"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListOrdersQuery struct {
	Status string `form:"status"`
	Type   string `form:"type"`
}
