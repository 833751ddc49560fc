package catalog

type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	ImageURL  *string `json:"image_url"`
	SoldCount int     `json:"sold_count"`
}

type Tier struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PriceEntry is one (product, tier) price row. Absent pairs resolve to 0.
type PriceEntry struct {
	ProductID string `json:"product_id"`
	TierID    string `json:"tier_id"`
	Price     int64  `json:"price"`
}

// PricedProduct is a catalog product with prices resolved for one mode.
// Price is the active unit price; ConsumerPrice is the reference price.
// A zero price means "price unknown", not "free".
type PricedProduct struct {
	Product
	ConsumerPrice int64 `json:"consumer_price"`
	Price         int64 `json:"price"`
}
