// Package remote implementa el cliente tipado contra el servicio de datos.
//
// El cliente no reintenta ni cachea: cada operación es una llamada HTTP
// simple y los errores se devuelven envueltos para que la capa de páginas
// decida (normalmente loguear y continuar).
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL es la URL del servicio de datos en desarrollo local.
const DefaultBaseURL = "http://localhost:2930"

// Client cliente HTTP del servicio de datos del back-office.
type Client struct {
	baseURL    string
	user       string // cabecera X-User en los conteos de inventario
	httpClient *http.Client
}

// Option configura el cliente.
type Option func(*Client)

// WithHTTPClient reemplaza el http.Client interno (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUser fija el usuario que firma los conteos de inventario.
func WithUser(user string) Option {
	return func(c *Client) { c.user = user }
}

// NewClient construye el cliente. baseURL vacío usa DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    baseURL,
		user:       "System",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ── Inventario ────────────────────────────────────────────────────────────────

// GetInventory devuelve el inventario completo.
func (c *Client) GetInventory(ctx context.Context) ([]InventoryItem, error) {
	var out []InventoryItem
	if err := c.do(ctx, http.MethodGet, "/inventory", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLowStock devuelve los artículos por debajo del nivel de reposición.
func (c *Client) GetLowStock(ctx context.Context) ([]InventoryItem, error) {
	var out []InventoryItem
	if err := c.do(ctx, http.MethodGet, "/inventory/low-stock", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateInventoryItem persiste un artículo editado. El servidor registra el
// conteo en el histórico a nombre del usuario configurado (cabecera X-User).
func (c *Client) UpdateInventoryItem(ctx context.Context, item InventoryItem) (*InventoryItem, error) {
	var out InventoryItem
	if err := c.do(ctx, http.MethodPut, "/inventory/"+url.PathEscape(item.ID), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

// GetOrders devuelve todos los pedidos con sus líneas.
func (c *Client) GetOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PlaceOrder crea un pedido nuevo y devuelve la versión persistida
// (con id y total asignados por el servidor).
func (c *Client) PlaceOrder(ctx context.Context, order Order) (*Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodPost, "/orders", order, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrderStatus mueve un pedido de columna.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) (*Order, error) {
	body := map[string]string{"status": status}
	var out Order
	if err := c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// GetSuppliers devuelve todos los proveedores.
func (c *Client) GetSuppliers(ctx context.Context) ([]Supplier, error) {
	var out []Supplier
	if err := c.do(ctx, http.MethodGet, "/suppliers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSupplier da de alta un proveedor.
func (c *Client) CreateSupplier(ctx context.Context, s Supplier) (*Supplier, error) {
	var out Supplier
	if err := c.do(ctx, http.MethodPost, "/suppliers", s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSupplier persiste un proveedor editado.
func (c *Client) UpdateSupplier(ctx context.Context, s Supplier) (*Supplier, error) {
	var out Supplier
	if err := c.do(ctx, http.MethodPut, "/suppliers/"+url.PathEscape(s.ID), s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Histórico ─────────────────────────────────────────────────────────────────

// GetChangeLog devuelve el histórico; itemID vacío trae todo.
func (c *Client) GetChangeLog(ctx context.Context, itemID string) ([]ChangeLogEntry, error) {
	path := "/changelog"
	if itemID != "" {
		path += "?item_id=" + url.QueryEscape(itemID)
	}
	var out []ChangeLogEntry
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ── Transporte ────────────────────────────────────────────────────────────────

type remoteError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do ejecuta la petición, decodifica JSON y traduce respuestas no-2xx a error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("remote: serializar cuerpo %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("remote: crear petición %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-User", c.user)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("remote: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var re remoteError
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &re) == nil && re.Message != "" {
			return fmt.Errorf("remote: %s %s: HTTP %d: %s (%s)", method, path, resp.StatusCode, re.Message, re.Code)
		}
		return fmt.Errorf("remote: %s %s: HTTP %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("remote: decodificar respuesta %s %s: %w", method, path, err)
	}
	return nil
}
