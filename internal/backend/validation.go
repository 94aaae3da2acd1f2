package backend

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/example/storefront/internal/remote"
)

// newValidator returns a validator with the order-draft struct rule
// registered: the submitted items price must equal the sum of
// price x qty over the draft's lines, so a client whose derivation
// drifted from its own cart is rejected instead of stored.
func newValidator() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterStructValidation(orderDraftStructValidation, remote.OrderDraft{})
	return v
}

func orderDraftStructValidation(sl validatorv10.StructLevel) {
	draft := sl.Current().Interface().(remote.OrderDraft)

	var sum int64
	for _, item := range draft.Items {
		if item.Qty < 1 || item.Price < 0 {
			sl.ReportError(draft.Items, "items", "Items", "valid_lines", "")
			return
		}
		sum += int64(item.Price) * int64(item.Qty)
	}
	if sum != int64(draft.ItemsPrice) {
		sl.ReportError(draft.ItemsPrice, "items_price", "ItemsPrice", "items_price_match", "")
	}
	if int64(draft.ItemsPrice+draft.ShippingPrice+draft.TaxPrice) != int64(draft.TotalPrice) {
		sl.ReportError(draft.TotalPrice, "total_price", "TotalPrice", "total_price_match", "")
	}
}

// bindAndValidate decodes the JSON body into out and validates it,
// writing the 400 response itself so handlers can just return.
func (s *Server) bindAndValidate(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return false
	}
	if err := s.validate.Struct(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": validationDetail(err)})
		return false
	}
	return true
}

func validationDetail(err error) string {
	if ve, ok := err.(validatorv10.ValidationErrors); ok && len(ve) > 0 {
		switch ve[0].Tag() {
		case "items_price_match":
			return "items price does not match order lines"
		case "total_price_match":
			return "total price does not match its parts"
		case "valid_lines":
			return "order lines must have positive quantity and non-negative price"
		}
		return "validation failed on " + ve[0].Field()
	}
	return "validation failed"
}
