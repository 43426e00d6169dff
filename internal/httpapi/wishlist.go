package httpapi

import (
	"errors"
	"net/http"

	"adornia-be/internal/wishlist"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) GetWishlist(c *gin.Context) {
	state := h.wishStore.Load(c.Request)
	respondOK(c, http.StatusOK, gin.H{"wishlist": state})
}

func (h *Handlers) AddWishlistItem(c *gin.Context) {
	entry, ok := h.bindEntry(c)
	if !ok {
		return
	}

	state := wishlist.Add(h.wishStore.Load(c.Request), entry)
	if err := h.saveWishlist(c, state); err != nil {
		return
	}
	respondOK(c, http.StatusOK, gin.H{"wishlist": state})
}

func (h *Handlers) ToggleWishlistItem(c *gin.Context) {
	entry, ok := h.bindEntry(c)
	if !ok {
		return
	}

	state := wishlist.Toggle(h.wishStore.Load(c.Request), entry)
	if err := h.saveWishlist(c, state); err != nil {
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"wishlist": state,
		"added":    wishlist.Contains(state, entry.ProductID),
	})
}

func (h *Handlers) RemoveWishlistItem(c *gin.Context) {
	state := wishlist.Remove(h.wishStore.Load(c.Request), c.Param("id"))
	if err := h.saveWishlist(c, state); err != nil {
		return
	}
	respondOK(c, http.StatusOK, gin.H{"wishlist": state})
}

func (h *Handlers) ClearWishlist(c *gin.Context) {
	h.wishStore.Clear(c.Writer)
	respondOK(c, http.StatusOK, gin.H{"wishlist": wishlist.Empty()})
}

func (h *Handlers) bindEntry(c *gin.Context) (wishlist.Entry, bool) {
	var entry wishlist.Entry
	if err := c.ShouldBindJSON(&entry); err != nil {
		respondError(c, http.StatusBadRequest, "invalid wishlist entry")
		return entry, false
	}
	if entry.ProductID == "" {
		respondError(c, http.StatusBadRequest, "productId is required")
		return entry, false
	}
	return entry, true
}

func (h *Handlers) saveWishlist(c *gin.Context, state wishlist.State) error {
	err := h.wishStore.Save(c.Writer, state)
	if err != nil {
		if errors.Is(err, wishlist.ErrWishlistTooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, "wishlist is too large to store")
			return err
		}
		respondError(c, http.StatusInternalServerError, "could not save wishlist")
	}
	return err
}
