// internal/selecao/criar.go
package selecao

import (
	"github.com/ConsigMais/motor-cotacao/internal/oferta"
	"github.com/ConsigMais/motor-cotacao/internal/snapshot"
)

// CriarSelecaoProposta monta a seleção inicial ao abrir uma proposta para
// edição: os pares gravados no snapshot, na ordem gravada.
func CriarSelecaoProposta(p *snapshot.Proposta) Selecao {
	if p == nil {
		return nil
	}
	sel := make(Selecao, 0, len(p.Selecionados))
	for _, par := range p.Selecionados {
		sel = append(sel, Item{OfertaID: par.OfertaID, CondicaoID: par.CondicaoID})
	}
	return sel
}

// GarantirItens garante a regra "com ofertas, seleção nunca vazia": se a
// seleção está vazia e há ofertas, assume a primeira condição de cada uma.
func GarantirItens(sel Selecao, ofertas []oferta.Oferta) Selecao {
	if len(sel) > 0 || len(ofertas) == 0 {
		return sel
	}
	return PrimeiraCondicaoDeCada(ofertas)
}
