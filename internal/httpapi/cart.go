package httpapi

import (
	"errors"
	"net/http"

	"adornia-be/internal/cart"

	"github.com/gin-gonic/gin"
)

// maxLineQuantity is the per-line ceiling. Made-to-order lines are not
// capped by stock, so the ceiling keeps a typo from becoming a 50,000-unit
// bespoke order.
const maxLineQuantity = 999

func (h *Handlers) GetCart(c *gin.Context) {
	state := h.cartStore.Load(c.Request)
	respondOK(c, http.StatusOK, gin.H{"cart": state})
}

func (h *Handlers) AddCartItem(c *gin.Context) {
	var item cart.LineItem
	if err := c.ShouldBindJSON(&item); err != nil {
		respondError(c, http.StatusBadRequest, "invalid cart item")
		return
	}
	if item.ProductID == "" || item.Size == "" {
		respondError(c, http.StatusBadRequest, "productId and size are required")
		return
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	if item.Quantity > maxLineQuantity {
		item.Quantity = maxLineQuantity
	}

	state := cart.Add(h.cartStore.Load(c.Request), item)
	state = capLine(state, cart.LineKey(item.ProductID, item.Size, item.Color))

	if err := h.saveCart(c, state); err != nil {
		return
	}
	respondOK(c, http.StatusOK, gin.H{"cart": state})
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handlers) UpdateCartItem(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid quantity payload")
		return
	}
	if req.Quantity > maxLineQuantity {
		req.Quantity = maxLineQuantity
	}

	state := cart.UpdateQuantity(h.cartStore.Load(c.Request), c.Param("key"), req.Quantity)
	if err := h.saveCart(c, state); err != nil {
		return
	}
	respondOK(c, http.StatusOK, gin.H{"cart": state})
}

func (h *Handlers) RemoveCartItem(c *gin.Context) {
	state := cart.Remove(h.cartStore.Load(c.Request), c.Param("key"))
	if err := h.saveCart(c, state); err != nil {
		return
	}
	respondOK(c, http.StatusOK, gin.H{"cart": state})
}

func (h *Handlers) ClearCart(c *gin.Context) {
	h.cartStore.Clear(c.Writer)
	respondOK(c, http.StatusOK, gin.H{"cart": cart.Empty()})
}

func (h *Handlers) saveCart(c *gin.Context, state cart.State) error {
	err := h.cartStore.Save(c.Writer, state)
	if err != nil {
		if errors.Is(err, cart.ErrCartTooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, "cart is too large to store")
			return err
		}
		respondError(c, http.StatusInternalServerError, "could not save cart")
	}
	return err
}

// capLine clamps a merged line that crossed the ceiling after an add.
func capLine(s cart.State, key string) cart.State {
	for _, item := range s.Items {
		if cart.LineKey(item.ProductID, item.Size, item.Color) == key && item.Quantity > maxLineQuantity {
			return cart.UpdateQuantity(s, key, maxLineQuantity)
		}
	}
	return s
}
