// Package backend is the reference storefront API implementation the
// client layer is developed and end-to-end tested against. State is
// in-memory; the wire contract is what matters.
package backend

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/example/storefront/internal/auth"
	"github.com/example/storefront/internal/slice/order"
	"github.com/example/storefront/internal/slice/product"
)

type account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
}

type Server struct {
	tokens   *auth.TokenService
	validate *validatorv10.Validate

	mu       sync.RWMutex
	accounts map[string]*account // email -> account
	products []product.Product
	orders   map[string]order.Order
	ordersBy map[string]string // orderID -> userID
}

type Config struct {
	JWTSecret    string
	TokenExpiry  time.Duration
	SeedProducts []product.Product
}

func NewServer(cfg Config) *Server {
	expiry := cfg.TokenExpiry
	if expiry == 0 {
		expiry = 24 * time.Hour
	}
	return &Server{
		tokens:   auth.NewTokenService(cfg.JWTSecret, expiry),
		validate: newValidator(),
		accounts: make(map[string]*account),
		products: cfg.SeedProducts,
		orders:   make(map[string]order.Order),
		ordersBy: make(map[string]string),
	}
}

// Router builds the gin engine with all storefront routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.POST("/users/login", s.handleLogin)
		api.POST("/users", s.handleRegister)
		api.GET("/products", s.handleListProducts)
		api.GET("/products/:id", s.handleGetProduct)

		authed := api.Group("")
		authed.Use(s.requireAuth())
		{
			authed.GET("/users/profile", s.handleGetProfile)
			authed.PUT("/users/profile", s.handleUpdateProfile)
			authed.POST("/orders", s.handleCreateOrder)
			authed.GET("/orders/:id", s.handleGetOrder)
		}
	}

	return r
}

// RegisterAccount seeds a user account, for tests and the demo binary.
func (s *Server) RegisterAccount(name, email, password string, isAdmin bool) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[email] = &account{
		ID:           newID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	}
	return nil
}
