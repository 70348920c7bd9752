package models

// Product represents a product in the catalogue.
// Products are immutable for the lifetime of a session; the catalogue is the
// single identity space that carts, wishlists and orders reference by ID.
type Product struct {
	ID          int     `bson:"_id"         json:"id"`
	Name        string  `bson:"name"        json:"name"`
	Price       float64 `bson:"price"       json:"price"`
	Description string  `bson:"description" json:"description"`
	Category    string  `bson:"category"    json:"category"`
	ImageURL    string  `bson:"image_url"   json:"imageUrl"`
}
