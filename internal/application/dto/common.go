package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Disponivel acompanha o código INSUFFICIENT_STOCK com a quantidade em estoque.
	Disponivel *int64 `json:"disponivel,omitempty"`
}
