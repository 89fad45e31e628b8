package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OkResponse respuesta mínima de las operaciones que solo confirman.
type OkResponse struct {
	Ok bool `json:"ok"`
}
