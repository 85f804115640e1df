package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/glowcosmetics/storefront/internal/repo"
)

// The cart lives in process memory scoped to a browsing session. The
// session is identified by a cookie issued on first contact; once the
// session goes idle the store evicts the cart, which matches the
// storefront's discard-on-session-end lifecycle.

const cartSessionCookie = "cart_session"

func cartSessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(cartSessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     cartSessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// GetCartHandler godoc
// @Summary Current cart contents and total
// @Tags cart
// @Produce json
// @Success 200 {object} cart.Snapshot
// @Router /cart [get]
func GetCartHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cartStore.Get(cartSessionID(w, r)))
}

// AddCartItemHandler godoc
// @Summary Add one unit of a product to the cart
// @Description Re-adding a product increments its line quantity instead
// @Description of creating a duplicate line. Stock is not checked here;
// @Description it is re-checked at checkout.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddCartItemRequest true "Product to add"
// @Success 200 {object} cart.Snapshot
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Unknown product"
// @Router /cart/items [post]
func AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(req.ProductID)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, cartStore.Add(cartSessionID(w, r), product))
}

// UpdateCartItemHandler godoc
// @Summary Set the quantity of a cart line
// @Description A quantity of zero or less removes the line. Lines for
// @Description products not in the cart are left untouched.
// @Tags cart
// @Accept json
// @Produce json
// @Param productID path int true "Product ID"
// @Param quantity body CartQuantityRequest true "New quantity"
// @Success 200 {object} cart.Snapshot
// @Failure 400 {string} string "Invalid input"
// @Router /cart/items/{productID} [put]
func UpdateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req CartQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, cartStore.UpdateQuantity(cartSessionID(w, r), productID, req.Quantity))
}

// RemoveCartItemHandler godoc
// @Summary Remove a line from the cart
// @Description Removing an absent product is a no-op, not an error.
// @Tags cart
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} cart.Snapshot
// @Failure 400 {string} string "Invalid product ID"
// @Router /cart/items/{productID} [delete]
func RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, cartStore.Remove(cartSessionID(w, r), productID))
}

// OpenCartHandler godoc
// @Summary Mark the cart sidebar as open
// @Tags cart
// @Produce json
// @Success 200 {object} cart.Snapshot
// @Router /cart/open [post]
func OpenCartHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cartStore.SetOpen(cartSessionID(w, r), true))
}

// CloseCartHandler godoc
// @Summary Mark the cart sidebar as closed
// @Tags cart
// @Produce json
// @Success 200 {object} cart.Snapshot
// @Router /cart/close [post]
func CloseCartHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cartStore.SetOpen(cartSessionID(w, r), false))
}
