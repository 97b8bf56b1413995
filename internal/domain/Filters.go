package domain

import "net/url"

// FilterAll é o valor sentinela de um filtro sem restrição. Um filtro em
// FilterAll é omitido por completo da query enviada à API (chave ausente,
// nunca string vazia).
const FilterAll = "All"

// FilterOptions são as listas de opções dos dropdowns de filtro. Carregadas
// uma única vez, somente leitura.
type FilterOptions struct {
	Platforms  []string `json:"platforms"`
	Industries []string `json:"industries"`
	Countries  []string `json:"countries"`
}

// FilterSelection é a seleção ativa dos três filtros independentes.
// Valores diferentes de FilterAll devem pertencer às listas de FilterOptions;
// isso é responsabilidade de quem seleciona e não é validado aqui; valores
// inválidos são repassados verbatim à API.
type FilterSelection struct {
	Platform string `json:"platform"`
	Industry string `json:"industry"`
	Country  string `json:"country"`
}

// NewFilterSelection cria uma seleção sem nenhuma restrição ativa.
func NewFilterSelection() FilterSelection {
	return FilterSelection{
		Platform: FilterAll,
		Industry: FilterAll,
		Country:  FilterAll,
	}
}

// AsQueryParams retorna somente as chaves com restrição ativa. Chave ausente
// significa "sem restrição" para o servidor.
func (f FilterSelection) AsQueryParams() url.Values {
	params := url.Values{}

	if f.isActive(f.Platform) {
		params.Set("platform", f.Platform)
	}
	if f.isActive(f.Industry) {
		params.Set("industry", f.Industry)
	}
	if f.isActive(f.Country) {
		params.Set("country", f.Country)
	}

	return params
}

// HasActiveFilter indica se pelo menos um dos três filtros está restrito.
func (f FilterSelection) HasActiveFilter() bool {
	return f.isActive(f.Platform) || f.isActive(f.Industry) || f.isActive(f.Country)
}

// Reset volta os três filtros para FilterAll.
func (f *FilterSelection) Reset() {
	f.Platform = FilterAll
	f.Industry = FilterAll
	f.Country = FilterAll
}

func (f FilterSelection) isActive(value string) bool {
	return value != "" && value != FilterAll
}
