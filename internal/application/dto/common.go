package dto

import "github.com/shopspring/decimal"

// El dashboard consume cantidades e importes como números JSON, no como strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
