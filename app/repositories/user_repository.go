package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/pkg/mongodb"
)

const usersCollection = "users"

// UserRepository persists user accounts.
type UserRepository struct{}

// NewUserRepository returns a UserRepository.
func NewUserRepository() *UserRepository { return &UserRepository{} }

// Find returns the user with the given ID.
func (r *UserRepository) Find(ctx context.Context, id int) (models.User, error) {
	var u models.User
	err := mongodb.Collection(usersCollection).
		FindOne(ctx, bson.M{"_id": id}).
		Decode(&u)
	return u, mapErr(err)
}

// FindByEmail returns the user with the given email. The lookup is
// case-sensitive; "User@x.com" and "user@x.com" are distinct accounts.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := mongodb.Collection(usersCollection).
		FindOne(ctx, bson.M{"email": email}).
		Decode(&u)
	return u, mapErr(err)
}

// Create inserts a new user with the next integer ID. A unique index on
// email turns concurrent duplicate signups into ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	id, err := nextSequence(ctx, usersCollection)
	if err != nil {
		return models.User{}, err
	}
	u.ID = id
	if _, err := mongodb.Collection(usersCollection).InsertOne(ctx, u); err != nil {
		return models.User{}, mapErr(err)
	}
	return u, nil
}

// Count returns the number of registered users.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return mongodb.Collection(usersCollection).CountDocuments(ctx, bson.M{})
}
