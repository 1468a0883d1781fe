// internal/snapshot/builder.go
package snapshot

import (
	"time"

	"github.com/ConsigMais/motor-cotacao/internal/oferta"
)

// MontarSimulacao constrói o snapshot canônico a partir da saída do
// agregador. Construtor puro: copia as ofertas descartando qualquer flag de
// seleção, que pertence ao estado transiente da sessão.
func MontarSimulacao(conv, produto Ref, ofertas []oferta.Oferta, params oferta.Parametros) Simulacao {
	copiadas := make([]oferta.Oferta, len(ofertas))
	for i, of := range ofertas {
		copiada := of
		copiada.Condicoes = make([]oferta.Condicao, len(of.Condicoes))
		for j, c := range of.Condicoes {
			c.Selecionada = false
			copiada.Condicoes[j] = c
		}
		copiadas[i] = copiada
	}
	return Simulacao{
		Kind:       KindSimulacao,
		Versao:     VersaoAtual,
		Convenio:   conv,
		Produto:    produto,
		Ofertas:    copiadas,
		Parametros: params,
	}
}

// MontarProposta embrulha a simulação com a seleção do agente. Pares que não
// existem na simulação são descartados em silêncio: a simulação pode ter
// sido recalculada depois da escolha, e isso é esperado, não é erro.
func MontarProposta(sim Simulacao, simulacaoID string, selecionados []ParSelecionado, mensagem string, pdf PDF) Proposta {
	validos := make([]ParSelecionado, 0, len(selecionados))
	for _, p := range selecionados {
		if sim.ContemPar(p) {
			validos = append(validos, p)
		}
	}
	return Proposta{
		Kind:         KindProposta,
		Versao:       VersaoAtual,
		SimulacaoID:  simulacaoID,
		Simulacao:    sim,
		Selecionados: validos,
		Mensagem:     mensagem,
		PDF:          pdf,
	}
}

// MontarNegocio congela os termos fechados de uma proposta. O par escolhido
// precisa existir na simulação embutida; caso contrário devolve nil, porque
// um negócio não pode referenciar condição que nunca foi ofertada.
func MontarNegocio(prop Proposta, par ParSelecionado, fechadoEm time.Time) *Negocio {
	for _, of := range prop.Simulacao.Ofertas {
		if of.ID != par.OfertaID {
			continue
		}
		for _, c := range of.Condicoes {
			if c.ID != par.CondicaoID {
				continue
			}
			return &Negocio{
				Kind:         KindNegocio,
				Versao:       VersaoAtual,
				Banco:        of.BancoNome,
				Produto:      prop.Simulacao.Produto.Rotulo,
				PrazoMeses:   c.Meses,
				Parcela:      c.Parcela,
				ValorLiquido: c.ValorLiquido,
				ValorTotal:   c.Parcela * float64(c.Meses),
				FechadoEm:    fechadoEm,
			}
		}
	}
	return nil
}
