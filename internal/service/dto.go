package service

// ProductSummary is the listing/home card view of a product
type ProductSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	Rating      string `json:"rating"`
}

// ColorOptionDTO is a selectable color variant
type ColorOptionDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Hex       string `json:"hex"`
	Available bool   `json:"available"`
}

// SpecificationDTO is a title/value pair on the detail view
type SpecificationDTO struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// ReviewDTO is a customer review on the detail view
type ReviewDTO struct {
	ID              string `json:"id"`
	AuthorName      string `json:"author_name"`
	Rating          string `json:"rating"`
	Date            string `json:"date"`
	Title           string `json:"title"`
	Comment         string `json:"comment"`
	Verified        bool   `json:"verified_purchase"`
	HelpfulVotes    int    `json:"helpful_votes"`
	NotHelpfulVotes int    `json:"not_helpful_votes"`
}

// ProductDetail is the full product-detail view
type ProductDetail struct {
	ProductSummary
	Sizes          []string           `json:"sizes"`
	Colors         []ColorOptionDTO   `json:"colors"`
	Specifications []SpecificationDTO `json:"specifications"`
	Reviews        []ReviewDTO        `json:"reviews"`
}

// ListProductsQuery carries the listing filters, sort and page
type ListProductsQuery struct {
	MinPrice   string
	MaxPrice   string
	Categories []string
	Sort       string
	Page       int
	PageSize   int
}

// FilterMetadataDTO drives the listing sidebar
type FilterMetadataDTO struct {
	Categories []string `json:"categories"`
	MinPrice   string   `json:"min_price"`
	MaxPrice   string   `json:"max_price"`
}

// ProductListResponse is one page of the filtered, sorted catalog
type ProductListResponse struct {
	Products   []ProductSummary `json:"products"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
	TotalCount int              `json:"total_count"`
}

// SlideDTO is a homepage hero banner
type SlideDTO struct {
	ID       int    `json:"id"`
	ImageURL string `json:"image_url"`
	AltText  string `json:"alt_text"`
}

// HomeResponse is the homepage payload
type HomeResponse struct {
	Slides   []SlideDTO       `json:"slides"`
	Featured []ProductSummary `json:"featured_products"`
}

// SelectionRequest updates the detail-page selection. Quantity arrives as
// the raw input string; anything unparseable clamps to 1.
type SelectionRequest struct {
	Size     string `json:"size"`
	ColorID  string `json:"color_id"`
	Quantity string `json:"quantity"`
}

// CartItemDTO is one cart line item with its derived line total
type CartItemDTO struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	UnitPrice    string `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	VariantLabel string `json:"variant,omitempty"`
	LineTotal    string `json:"line_total"`
}

// TotalsDTO is the derived cart pricing
type TotalsDTO struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
}

// CartResponse is the cart view
type CartResponse struct {
	Items        []CartItemDTO `json:"items"`
	ItemCount    int           `json:"item_count"`
	Instructions string        `json:"special_instructions,omitempty"`
	Totals       TotalsDTO     `json:"totals"`
}

// UpdateQuantityRequest targets a line item by its key
type UpdateQuantityRequest struct {
	ProductID    string `json:"product_id" binding:"required"`
	VariantLabel string `json:"variant"`
	Quantity     int    `json:"quantity"`
}

// RemoveItemRequest targets a line item by its key
type RemoveItemRequest struct {
	ProductID    string `json:"product_id" binding:"required"`
	VariantLabel string `json:"variant"`
}

// InstructionsRequest sets the cart's special instructions
type InstructionsRequest struct {
	Instructions string `json:"special_instructions"`
}

// ShippingRequest is the checkout shipping form. Field rules are enforced
// by the flow so that every failing field is reported together, not by
// bind-time tags.
type ShippingRequest struct {
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Address    string `json:"address"`
	Apartment  string `json:"apartment,omitempty"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone,omitempty"`
}

// PaymentRequest is the checkout payment form
type PaymentRequest struct {
	CardNumber string `json:"card_number"`
	CardName   string `json:"card_name"`
	ExpiryDate string `json:"expiry_date"`
	CVC        string `json:"cvc"`
}

// ShippingMethodRequest selects the delivery speed
type ShippingMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

// CheckoutStateResponse is the current checkout view
type CheckoutStateResponse struct {
	Phase          string           `json:"phase"`
	ShippingMethod string           `json:"shipping_method"`
	Shipping       *ShippingRequest `json:"shipping,omitempty"`
	Totals         TotalsDTO        `json:"totals"`
}

// OrderResponse is the order-confirmation view
type OrderResponse struct {
	OrderID        string          `json:"order_id"`
	Items          []CartItemDTO   `json:"items"`
	Shipping       ShippingRequest `json:"shipping"`
	ShippingMethod string          `json:"shipping_method"`
	CardLast4      string          `json:"card_last4"`
	Totals         TotalsDTO       `json:"totals"`
	SubmittedAt    string          `json:"submitted_at"`
}
