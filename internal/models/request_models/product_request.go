package request_models

type CreateProductRequest struct {
	Title              string   `json:"title" binding:"required,max=200"`
	Description        string   `json:"description" binding:"required"`
	Price              int64    `json:"price" binding:"required,gt=0"`
	Category           string   `json:"category" binding:"required,max=100"`
	Condition          string   `json:"condition" binding:"omitempty,oneof=new used refurbished"`
	Images             []string `json:"images" binding:"omitempty,max=10,dive,url"`
	InstallmentEnabled bool     `json:"installmentEnabled"`
}

type UpdateProductRequest struct {
	Title              *string   `json:"title" binding:"omitempty,min=1,max=200"`
	Description        *string   `json:"description" binding:"omitempty,min=1"`
	Price              *int64    `json:"price" binding:"omitempty,gt=0"`
	Category           *string   `json:"category" binding:"omitempty,min=1,max=100"`
	Condition          *string   `json:"condition" binding:"omitempty,oneof=new used refurbished"`
	Images             *[]string `json:"images" binding:"omitempty,max=10,dive,url"`
	InstallmentEnabled *bool     `json:"installmentEnabled"`
}

// ProductListQuery is bound from the query string; page and limit are parsed
// separately so their errors map onto the pagination sentinels.
type ProductListQuery struct {
	Category  string `form:"category"`
	Condition string `form:"condition" binding:"omitempty,oneof=new used refurbished"`
	MinPrice  *int64 `form:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice  *int64 `form:"maxPrice" binding:"omitempty,gte=0"`
	Search    string `form:"search"`
	Page      string `form:"page"`
	Limit     string `form:"limit"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}
