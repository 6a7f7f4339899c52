package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arogya-storefront/internal/api"
	"arogya-storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticTokens is a fixed-value token source shared by the service tests.
type staticTokens string

func (s staticTokens) Token() string { return string(s) }

// recordedRequest captures what the client actually sent.
type recordedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   []byte
}

// newRecordingServer serves canned JSON and records every request.
func newRecordingServer(t *testing.T, status int, responseBody string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Auth:   r.Header.Get("Authorization"),
			Body:   body,
		})
		w.WriteHeader(status)
		w.Write([]byte(responseBody))
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

func newAPIClient(server *httptest.Server, token string) *api.Client {
	return api.NewClient(server.URL, 5*time.Second, staticTokens(token), zerolog.Nop())
}

func TestCartService_AddToCart_SendsAbsoluteQuantity(t *testing.T) {
	server, requests := newRecordingServer(t, http.StatusOK,
		`{"_id":"c1","items":[{"productId":"p1","quantity":3,"name":"Arnica 30C","price":150}]}`)
	svc := NewCartService(newAPIClient(server, "tok"), zerolog.Nop())

	cart, err := svc.AddToCart(context.Background(), "p1", 3)
	require.NoError(t, err)
	require.Len(t, *requests, 1)

	req := (*requests)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/cart/add-to-cart", req.Path)
	assert.Equal(t, "Bearer tok", req.Auth)
	assert.JSONEq(t, `{"productId":"p1","quantity":3}`, string(req.Body))

	item, ok := cart.Item("p1")
	require.True(t, ok)
	assert.Equal(t, 3, item.Quantity)
}

func TestCartService_AddToCart_SetSemantics(t *testing.T) {
	// The server treats add-to-cart as an upsert: the second call's
	// quantity replaces the first, it does not add to it.
	quantities := map[string]int{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			ProductID string `json:"productId"`
			Quantity  int    `json:"quantity"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		quantities[payload.ProductID] = payload.Quantity

		cart := model.Cart{ID: "c1"}
		for id, q := range quantities {
			cart.Items = append(cart.Items, model.CartItem{ProductID: id, Quantity: q})
		}
		json.NewEncoder(w).Encode(cart)
	}))
	t.Cleanup(server.Close)

	svc := NewCartService(newAPIClient(server, "tok"), zerolog.Nop())

	_, err := svc.AddToCart(context.Background(), "p1", 2)
	require.NoError(t, err)

	cart, err := svc.AddToCart(context.Background(), "p1", 5)
	require.NoError(t, err)

	item, ok := cart.Item("p1")
	require.True(t, ok)
	assert.Equal(t, 5, item.Quantity, "second quantity wins outright")
}

func TestCartService_AddToCart_RejectsNonPositiveQuantity(t *testing.T) {
	server, requests := newRecordingServer(t, http.StatusOK, `{}`)
	svc := NewCartService(newAPIClient(server, "tok"), zerolog.Nop())

	_, err := svc.AddToCart(context.Background(), "p1", 0)
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)
	assert.Empty(t, *requests, "invalid quantity must not reach the network")
}

func TestCartService_RemoveFromCart(t *testing.T) {
	server, requests := newRecordingServer(t, http.StatusOK, `{}`)
	svc := NewCartService(newAPIClient(server, "tok"), zerolog.Nop())

	err := svc.RemoveFromCart(context.Background(), "c1", "p1")
	require.NoError(t, err)
	require.Len(t, *requests, 1)

	req := (*requests)[0]
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "/api/cart/remove/c1", req.Path)
	assert.JSONEq(t, `{"productId":"p1"}`, string(req.Body))
}

func TestCartService_ClearCart(t *testing.T) {
	server, requests := newRecordingServer(t, http.StatusOK, ``)
	svc := NewCartService(newAPIClient(server, "tok"), zerolog.Nop())

	require.NoError(t, svc.ClearCart(context.Background()))
	require.Len(t, *requests, 1)
	assert.Equal(t, http.MethodDelete, (*requests)[0].Method)
	assert.Equal(t, "/api/cart", (*requests)[0].Path)
	assert.Equal(t, "Bearer tok", (*requests)[0].Auth)
}

func TestCartService_GetCart_Unauthorized(t *testing.T) {
	server, _ := newRecordingServer(t, http.StatusUnauthorized, `{"error":"UNAUTHORIZED","message":"missing token"}`)
	svc := NewCartService(newAPIClient(server, ""), zerolog.Nop())

	cart, err := svc.GetCart(context.Background())
	require.Error(t, err)
	assert.Nil(t, cart)
	assert.True(t, api.IsUnauthorized(err))
}
