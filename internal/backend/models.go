package backend

// Product as served by the catalog endpoints. Image fields are URLs
// hosted by the backend.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  string  `json:"categoryId"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	SellerID    string  `json:"sellerId"`
	SellerName  string  `json:"sellerName"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductInput is the payload for creating or updating a product.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  string  `json:"categoryId"`
	ImageURL    string  `json:"imageUrl"`
}

// PendingSeller is a seller application awaiting platform-admin review.
type PendingSeller struct {
	ID        string `json:"id"`
	ShopName  string `json:"shopName"`
	OwnerName string `json:"ownerName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	AppliedAt string `json:"appliedAt"`
}

type CustomerProfileInput struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

type SellerProfileInput struct {
	ShopName    string `json:"shopName"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
}
