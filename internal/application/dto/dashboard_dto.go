package dto

// ContagemStatus contadores por status de movimentação.
type ContagemStatus struct {
	Total       int `json:"total"`
	Pendentes   int `json:"pendentes"`
	Reconferir  int `json:"reconferir"`
	Divergentes int `json:"divergentes"`
	Aprovados   int `json:"aprovados"`
}

// DashboardDiaDTO contadores de um dia (YYYY-MM-DD).
type DashboardDiaDTO struct {
	Dia string `json:"dia"`
	ContagemStatus
}

// DashboardResponse resumo dos últimos 7 dias (hoje + 6 anteriores).
type DashboardResponse struct {
	Periodo struct {
		Inicio string `json:"inicio"`
		Fim    string `json:"fim"`
	} `json:"periodo"`
	Totais ContagemStatus    `json:"totais"`
	PorDia []DashboardDiaDTO `json:"por_dia"`
}
