package handlers_test

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"rentalequip_backend/internal/models"
)

// Fakes en mémoire pour tester les handlers sans MongoDB.

type fakeUserStore struct {
	users     []models.User
	insertErr error
	findErr   error
}

func (s *fakeUserStore) Insert(_ context.Context, user models.User) (models.User, error) {
	if s.insertErr != nil {
		return models.User{}, s.insertErr
	}
	user.ID = primitive.NewObjectID()
	s.users = append(s.users, user)
	return user, nil
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	for i := range s.users {
		if s.users[i].Username == username {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

type fakeProductStore struct {
	products []models.Product
	failErr  error
	findAlls int
}

func (s *fakeProductStore) Insert(_ context.Context, p models.Product) (models.Product, error) {
	if s.failErr != nil {
		return models.Product{}, s.failErr
	}
	p.ID = primitive.NewObjectID()
	s.products = append(s.products, p)
	return p, nil
}

func (s *fakeProductStore) FindAll(_ context.Context) ([]models.Product, error) {
	s.findAlls++
	if s.failErr != nil {
		return nil, s.failErr
	}
	out := []models.Product{}
	out = append(out, s.products...)
	return out, nil
}

func (s *fakeProductStore) Replace(_ context.Context, id primitive.ObjectID, p models.Product) (*models.Product, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Name = p.Name
			s.products[i].Category = p.Category
			s.products[i].PricePerDay = p.PricePerDay
			s.products[i].Image = p.Image
			updated := s.products[i]
			return &updated, nil
		}
	}
	return nil, nil
}

func (s *fakeProductStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if s.failErr != nil {
		return s.failErr
	}
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeProductCache struct {
	products    []models.Product
	filled      bool
	invalidates int
}

func (c *fakeProductCache) Get(_ context.Context) ([]models.Product, bool) {
	if !c.filled {
		return nil, false
	}
	return c.products, true
}

func (c *fakeProductCache) Set(_ context.Context, products []models.Product) {
	c.products = products
	c.filled = true
}

func (c *fakeProductCache) Invalidate(_ context.Context) {
	c.products = nil
	c.filled = false
	c.invalidates++
}

type fakeCartStore struct {
	carts     []models.Cart
	insertErr error
	findErr   error
}

func (s *fakeCartStore) Insert(_ context.Context, cart models.Cart) (models.Cart, error) {
	if s.insertErr != nil {
		return models.Cart{}, s.insertErr
	}
	cart.ID = primitive.NewObjectID()
	s.carts = append(s.carts, cart)
	return cart, nil
}

func (s *fakeCartStore) FindByUser(_ context.Context, userID string) ([]models.Cart, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	out := []models.Cart{}
	for _, cart := range s.carts {
		if cart.UserID == userID {
			out = append(out, cart)
		}
	}
	return out, nil
}
