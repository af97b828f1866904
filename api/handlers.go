package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lalicorera/storefront/catalog"
	"github.com/lalicorera/storefront/client"
	"github.com/lalicorera/storefront/session"
)

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := client.ProductQuery{
		Category: q.Get("category"),
		Featured: q.Get("featured") == "true",
		Search:   q.Get("search"),
	}
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
		query.Page = n
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil && n > 0 {
		query.Limit = n
	}

	list, err := a.client.ListProducts(r.Context(), query)
	if err != nil {
		mapError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := catalog.ID(chi.URLParam(r, "id"))
	p, err := a.client.GetProduct(r.Context(), id)
	if err != nil {
		mapError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *API) cartResponse() CartResponse {
	total := a.cart.Total()
	return CartResponse{
		Items:          a.cart.Lines(),
		Total:          total,
		TotalFormatted: catalog.FormatCOP(total),
	}
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.cartResponse())
}

func (a *API) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid product payload")
		return
	}
	if err := a.cart.Add(p); err != nil {
		mapError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.cartResponse())
}

func (a *API) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid quantity payload")
		return
	}
	id := catalog.ID(chi.URLParam(r, "id"))
	if err := a.cart.SetQuantity(id, req.Quantity); err != nil {
		mapError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.cartResponse())
}

func (a *API) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id := catalog.ID(chi.URLParam(r, "id"))
	if err := a.cart.Remove(id); err != nil {
		mapError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.cartResponse())
}

func (a *API) handleClearCart(w http.ResponseWriter, r *http.Request) {
	if err := a.cart.Clear(); err != nil {
		mapError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.cartResponse())
}

func (a *API) sessionResponse() SessionResponse {
	return SessionResponse{
		State: a.session.State().String(),
		User:  a.session.CurrentUser(),
	}
}

func (a *API) handleGetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.sessionResponse())
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds client.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid credentials payload")
		return
	}
	if _, err := a.session.Login(r.Context(), creds); err != nil {
		mapError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.sessionResponse())
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	a.session.Logout()
	writeJSON(w, http.StatusOK, a.sessionResponse())
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var reg client.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid registration payload")
		return
	}
	if _, err := a.session.Register(r.Context(), reg); err != nil {
		mapError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.sessionResponse())
}

func (a *API) handleCheckout(w http.ResponseWriter, r *http.Request) {
	total := a.cart.Total()
	res := CheckoutResponse{
		Items:          a.cart.Len(),
		Total:          total,
		TotalFormatted: catalog.FormatCOP(total),
	}
	switch {
	case res.Items == 0:
		res.Reason = "cart is empty"
	case a.session.State() != session.StateAuthenticated:
		res.Reason = "login required"
	default:
		res.Ready = true
	}
	writeJSON(w, http.StatusOK, res)
}
