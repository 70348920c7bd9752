package models

import "time"

// Review is a customer rating and comment on one product.
type Review struct {
	ID        string    `bson:"_id"        json:"id"`
	ProductID int       `bson:"product_id" json:"productId"`
	UserID    int       `bson:"user_id"    json:"userId"`
	UserName  string    `bson:"user_name"  json:"userName"`
	Rating    int       `bson:"rating"     json:"rating"` // 1 to 5
	Comment   string    `bson:"comment"    json:"comment"`
	Date      time.Time `bson:"date"       json:"date"`
}
