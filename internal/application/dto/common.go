package dto

// ErrorResponse corpo de erro HTTP padrão da API.
// As rotas /api/admin/* usam OkResponse/AdminErrorResponse (formato legado).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OkResponse corpo mínimo de sucesso das rotas administrativas.
type OkResponse struct {
	Ok bool `json:"ok"`
}

// AdminErrorResponse corpo de erro das rotas administrativas, no formato
// legado {"error": "..."}.
type AdminErrorResponse struct {
	Error string `json:"error"`
}
