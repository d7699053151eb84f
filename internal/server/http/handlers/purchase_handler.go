package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novelnest/userservice/internal/server/http/dto"
)

// PurchaseHandler serves the purchase history of the authenticated customer.
type PurchaseHandler struct {
	facade PurchaseFacade
}

// NewPurchaseHandler creates PurchaseHandler instance.
func NewPurchaseHandler(facade PurchaseFacade) *PurchaseHandler {
	return &PurchaseHandler{facade: facade}
}

// List handles GET /api/user/purchases.
func (h *PurchaseHandler) List(c *gin.Context) {
	purchases, err := h.facade.Purchases(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "purchase lookup failed"})
		return
	}

	if len(purchases) == 0 {
		c.JSON(http.StatusNotFound, dto.PurchaseErrorResponse{
			Success: false,
			Message: "No purchases found for this user",
		})
		return
	}

	items := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		items = append(items, dto.PurchaseResponse{
			ID:           p.ID,
			OrderID:      p.OrderID,
			CustomerID:   p.CustomerID,
			BookID:       p.BookID,
			BookTitle:    p.BookTitle,
			BookAuthor:   p.BookAuthor,
			BookGenre:    p.BookGenre,
			PurchaseDate: p.PurchaseDate,
			OrderStatus:  string(p.OrderStatus),
		})
	}

	c.JSON(http.StatusOK, dto.PurchaseListResponse{Success: true, Data: items})
}
