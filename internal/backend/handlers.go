package backend

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/example/storefront/internal/auth"
	"github.com/example/storefront/internal/remote"
	"github.com/example/storefront/internal/slice/order"
	"github.com/example/storefront/internal/slice/user"
)

const claimsKey = "claims"

func newID() string { return uuid.New().String() }

func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "not authorized, no token"})
			return
		}

		claims, err := s.tokens.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "not authorized, token failed"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

func claimsFrom(c *gin.Context) *auth.Claims {
	return c.MustGet(claimsKey).(*auth.Claims)
}

// sessionInfo issues a fresh token and packages the session payload the
// client persists.
func (s *Server) sessionInfo(a *account) (user.Info, error) {
	token, err := s.tokens.Issue(a.ID, a.Name, a.Email, a.IsAdmin)
	if err != nil {
		return user.Info{}, err
	}
	return user.Info{
		ID:      a.ID,
		Name:    a.Name,
		Email:   a.Email,
		IsAdmin: a.IsAdmin,
		Token:   token,
	}, nil
}

// Users

func (s *Server) handleLogin(c *gin.Context) {
	var req remote.LoginRequest
	if !s.bindAndValidate(c, &req) {
		return
	}

	s.mu.RLock()
	a, ok := s.accounts[req.Email]
	s.mu.RUnlock()

	if !ok || !auth.CheckPassword(req.Password, a.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid email or password"})
		return
	}

	info, err := s.sessionInfo(a)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not issue token"})
		return
	}
	c.JSON(http.StatusOK, info)
}

func (s *Server) handleRegister(c *gin.Context) {
	var req remote.RegisterRequest
	if !s.bindAndValidate(c, &req) {
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	s.mu.Lock()
	if _, exists := s.accounts[req.Email]; exists {
		s.mu.Unlock()
		c.JSON(http.StatusBadRequest, gin.H{"detail": "user with this email already exists"})
		return
	}
	a := &account{ID: newID(), Name: req.Name, Email: req.Email, PasswordHash: hash}
	s.accounts[req.Email] = a
	s.mu.Unlock()

	info, err := s.sessionInfo(a)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not issue token"})
		return
	}
	c.JSON(http.StatusCreated, info)
}

func (s *Server) handleGetProfile(c *gin.Context) {
	claims := claimsFrom(c)

	s.mu.RLock()
	a, ok := s.accounts[claims.Email]
	s.mu.RUnlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "user not found"})
		return
	}

	c.JSON(http.StatusOK, user.Profile{ID: a.ID, Name: a.Name, Email: a.Email, IsAdmin: a.IsAdmin})
}

func (s *Server) handleUpdateProfile(c *gin.Context) {
	claims := claimsFrom(c)

	var req remote.UpdateProfileRequest
	if !s.bindAndValidate(c, &req) {
		return
	}

	s.mu.Lock()
	a, ok := s.accounts[claims.Email]
	if !ok {
		s.mu.Unlock()
		c.JSON(http.StatusNotFound, gin.H{"detail": "user not found"})
		return
	}
	if req.Name != "" {
		a.Name = req.Name
	}
	if req.Email != "" && req.Email != a.Email {
		delete(s.accounts, a.Email)
		a.Email = req.Email
		s.accounts[a.Email] = a
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			s.mu.Unlock()
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		a.PasswordHash = hash
	}
	s.mu.Unlock()

	info, err := s.sessionInfo(a)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not issue token"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// Products

func (s *Server) handleListProducts(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c.JSON(http.StatusOK, s.products)
}

func (s *Server) handleGetProduct(c *gin.Context) {
	id := c.Param("id")

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			c.JSON(http.StatusOK, p)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"detail": "product not found"})
}

// Orders

func (s *Server) handleCreateOrder(c *gin.Context) {
	claims := claimsFrom(c)

	var draft remote.OrderDraft
	if !s.bindAndValidate(c, &draft) {
		return
	}
	if len(draft.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "no order items"})
		return
	}

	o := order.Order{
		ID:              newID(),
		User:            user.Summary{Name: claims.Name, Email: claims.Email},
		Items:           draft.Items,
		ShippingAddress: draft.ShippingAddress,
		PaymentMethod:   draft.PaymentMethod,
		ItemsPrice:      draft.ItemsPrice,
		ShippingPrice:   draft.ShippingPrice,
		TaxPrice:        draft.TaxPrice,
		TotalPrice:      draft.TotalPrice,
	}

	s.mu.Lock()
	s.orders[o.ID] = o
	s.ordersBy[o.ID] = claims.UserID
	s.mu.Unlock()

	c.JSON(http.StatusCreated, o)
}

func (s *Server) handleGetOrder(c *gin.Context) {
	claims := claimsFrom(c)
	id := c.Param("id")

	s.mu.RLock()
	o, ok := s.orders[id]
	owner := s.ordersBy[id]
	s.mu.RUnlock()

	if !ok || (owner != claims.UserID && !claims.IsAdmin) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "order not found"})
		return
	}

	c.JSON(http.StatusOK, o)
}

// MarkPaid flags an order paid, for the demo binary's scripted flow.
func (s *Server) MarkPaid(orderID string, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return false
	}
	o.IsPaid = true
	o.PaidAt = &at
	s.orders[orderID] = o
	return true
}
