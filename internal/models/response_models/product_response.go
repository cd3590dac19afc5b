package response_models

import (
	"gidimart/internal/models/db_models"
	"gidimart/internal/repositories"
	"gidimart/pkg/utils"
)

type ProductResponse struct {
	ID                 string   `json:"id"`
	SellerID           string   `json:"sellerId"`
	SellerName         string   `json:"sellerName,omitempty"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              int64    `json:"price"`
	Category           string   `json:"category"`
	Condition          string   `json:"condition"`
	Images             []string `json:"images"`
	InstallmentEnabled bool     `json:"installmentEnabled"`
	EscrowEnabled      bool     `json:"escrowEnabled"`
	IsActive           bool     `json:"isActive"`
	AverageRating      float64  `json:"averageRating"`
	ReviewCount        int64    `json:"reviewCount"`
	CreatedAt          string   `json:"createdAt"`
}

func NewProductResponse(p *db_models.Product) ProductResponse {
	images := []string(p.Images)
	if images == nil {
		images = []string{}
	}
	return ProductResponse{
		ID:                 p.ID.String(),
		SellerID:           p.SellerID.String(),
		Title:              p.Title,
		Description:        p.Description,
		Price:              p.Price,
		Category:           p.Category,
		Condition:          string(p.Condition),
		Images:             images,
		InstallmentEnabled: p.InstallmentEnabled,
		EscrowEnabled:      p.EscrowEnabled,
		IsActive:           p.IsActive,
		CreatedAt:          utils.FormatRFC3339(p.CreatedAt),
	}
}

func NewProductRowResponse(row *repositories.ProductRow) ProductResponse {
	resp := NewProductResponse(&row.Product)
	resp.SellerName = row.SellerName
	resp.AverageRating = row.AverageRating
	resp.ReviewCount = row.ReviewCount
	return resp
}

func NewProductRowResponses(rows []repositories.ProductRow) []ProductResponse {
	out := make([]ProductResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewProductRowResponse(&rows[i]))
	}
	return out
}

type ReviewResponse struct {
	ID         string `json:"id"`
	ProductID  string `json:"productId"`
	ReviewerID string `json:"reviewerId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	CreatedAt  string `json:"createdAt"`
}

func NewReviewResponse(r *db_models.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID.String(),
		ProductID:  r.ProductID.String(),
		ReviewerID: r.ReviewerID.String(),
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  utils.FormatRFC3339(r.CreatedAt),
	}
}
