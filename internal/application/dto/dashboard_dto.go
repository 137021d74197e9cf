package dto

// DashboardSummaryDTO contadores del panel principal.
type DashboardSummaryDTO struct {
	Products  int64 `json:"products"`
	Quotes    int64 `json:"quotes"`
	Customers int64 `json:"customers"`
}

// ChatRequest mensaje entrante del asistente web.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse respuesta del asistente.
type ChatResponse struct {
	Reply string `json:"reply"`
}
