package entity

// Item entrada do catálogo de itens (dados de referência, somente leitura
// para o formulário de registro).
type Item struct {
	ID    string
	Nome  string
	Ativo bool
}
