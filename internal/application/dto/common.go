package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TransactionResponse confirmación de una mutación.
type TransactionResponse struct {
	StatusCode  int    `json:"status_code"`
	Transaction string `json:"transaction"`
}

// DetailResponse confirmación con detalle legible (permisos de usuario).
type DetailResponse struct {
	StatusCode int    `json:"status_code"`
	Detail     string `json:"detail"`
}

// MessageResponse mensaje simple (bienvenida).
type MessageResponse struct {
	Message string `json:"message"`
}
