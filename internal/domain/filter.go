package domain

// Filter é o filtro ativo enviado pela camada de apresentação. Campo vazio
// significa "sem filtro"; valor preenchido exige igualdade exata com o campo
// correspondente do registro (case-sensitive, sem correspondência parcial).
type Filter struct {
	EventDate string `json:"data"`
	City      string `json:"cidade"`
	State     string `json:"estado"`
}

// IsZero informa se nenhum filtro está ativo.
func (f Filter) IsZero() bool {
	return f.EventDate == "" && f.City == "" && f.State == ""
}

// Matches aplica a semântica de filtro sobre os descritores de um registro.
func (f Filter) Matches(eventDate, city, state string) bool {
	if f.EventDate != "" && eventDate != f.EventDate {
		return false
	}
	if f.City != "" && city != f.City {
		return false
	}
	if f.State != "" && state != f.State {
		return false
	}
	return true
}
