// internal/convenio/taxa.go
package convenio

import "time"

// TaxasAtivas filtra as taxas do convênio que podem ser usadas na cotação:
// ativas, do produto pedido e com vigência própria cobrindo a data. Devolve
// slice vazio (nunca erro) quando nenhuma qualifica; o agregador trata o
// vazio como condição bloqueante.
func TaxasAtivas(c *Convenio, produtoID string, data time.Time) []Taxa {
	if c == nil {
		return nil
	}
	dia := truncarDia(data)
	var ativas []Taxa
	for _, t := range c.Taxas {
		if !t.Ativa {
			continue
		}
		if t.ProdutoID != produtoID {
			continue
		}
		if !vigente(&t, dia) {
			continue
		}
		ativas = append(ativas, t)
	}
	return ativas
}

// vigente aplica a vigência própria da taxa. Pontas zeradas valem como
// "sem limite" daquele lado.
func vigente(t *Taxa, dia time.Time) bool {
	if !t.VigenciaInicio.IsZero() && dia.Before(truncarDia(t.VigenciaInicio)) {
		return false
	}
	if !t.VigenciaFim.IsZero() && dia.After(truncarDia(t.VigenciaFim)) {
		return false
	}
	return true
}
