// internal/oferta/agregador.go
package oferta

import (
	"fmt"
	"math"
	"sort"

	"github.com/ConsigMais/motor-cotacao/internal/convenio"
	"github.com/ConsigMais/motor-cotacao/internal/simulacao"
)

// Montar roda a calculadora sobre o produto cartesiano {taxas ativas} ×
// {prazos pedidos} e agrega o resultado em ofertas rankeadas. Falhas viram
// pendências por oferta/prazo em vez de abortar o lote. A função é pura:
// a UI a reexecuta a cada mudança de parâmetro.
func Montar(c *convenio.Convenio, produtoID string, p Parametros) Resultado {
	res := Resultado{Parametros: p}

	if pend := validarParametros(p); len(pend) > 0 {
		res.Pendencias = pend
		return res
	}

	janela := convenio.JanelaVigente(c, p.DataReferencia)
	if janela == nil {
		res.Pendencias = append(res.Pendencias, Pendencia{
			Severidade: SeveridadeErro,
			Contexto:   "vigência",
			Mensagem:   "nenhuma janela de vigência cobre a data de referência",
		})
		return res
	}
	if vigentes := convenio.JanelasVigentes(c, p.DataReferencia); len(vigentes) > 1 {
		res.Pendencias = append(res.Pendencias, Pendencia{
			Severidade: SeveridadeAviso,
			Contexto:   "vigência",
			Mensagem:   fmt.Sprintf("%d janelas cobrem a data; usando %q", len(vigentes), janela.Rotulo),
		})
	}

	taxas := convenio.TaxasAtivas(c, produtoID, p.DataReferencia)
	if len(taxas) == 0 {
		res.Pendencias = append(res.Pendencias, Pendencia{
			Severidade: SeveridadeErro,
			Contexto:   "taxas",
			Mensagem:   "nenhuma taxa ativa para o produto na data",
		})
		return res
	}

	prazosAtendidos := make(map[int]bool)
	for idx := range taxas {
		t := taxas[idx]
		of := Oferta{
			ID:        t.ID,
			BancoID:   t.BancoID,
			BancoNome: t.BancoNome,
			Tabela:    t.TabelaNome,
			Rank:      t.Rank,
		}
		for _, meses := range p.Prazos {
			entrada := simulacao.Entrada{
				PrazoMeses:    meses,
				DataSimulacao: p.DataReferencia,
				Janela:        janela,
				Taxa:          &t,
			}
			if p.TipoBase == BaseLiquido {
				entrada.ValorLiquidoAlvo = p.ValorBase
			} else {
				entrada.Margem = p.ValorBase
			}

			r, err := simulacao.Simular(entrada)
			if err != nil {
				res.Pendencias = append(res.Pendencias, Pendencia{
					Severidade: SeveridadeAviso,
					Contexto:   fmt.Sprintf("%s · %d meses", t.BancoNome, meses),
					Mensagem:   err.Error(),
				})
				continue
			}
			prazosAtendidos[meses] = true
			of.Condicoes = append(of.Condicoes, Condicao{
				ID:           fmt.Sprintf("%s-%d", t.ID, meses),
				Meses:        meses,
				Parcela:      r.Parcela,
				ValorLiquido: r.ValorLiquido,
				ValorBruto:   r.ValorBruto,
				Coeficiente:  r.Coeficiente,
				ValorTac:     r.ValorTac,
				Calculo: Calculo{
					TipoBase:       p.TipoBase,
					ValorBase:      p.ValorBase,
					DataReferencia: p.DataReferencia,
					JanelaID:       janela.ID,
					TaxaID:         t.ID,
					Detalhes:       r.Detalhes,
				},
			})
		}
		if len(of.Condicoes) > 0 {
			res.Ofertas = append(res.Ofertas, of)
		}
	}

	// Prazo que nenhum banco atendeu bloqueia o envio.
	for _, meses := range p.Prazos {
		if !prazosAtendidos[meses] {
			res.Pendencias = append(res.Pendencias, Pendencia{
				Severidade: SeveridadeErro,
				Contexto:   fmt.Sprintf("%d meses", meses),
				Mensagem:   "prazo não ofertado por nenhum banco",
			})
		}
	}

	ordenar(res.Ofertas)
	return res
}

func validarParametros(p Parametros) []Pendencia {
	var pend []Pendencia
	if p.TipoBase != BaseMargem && p.TipoBase != BaseLiquido {
		pend = append(pend, Pendencia{
			Severidade: SeveridadeErro,
			Contexto:   "baseType",
			Mensagem:   fmt.Sprintf("tipo de base desconhecido: %q", p.TipoBase),
		})
	}
	if p.ValorBase <= 0 {
		pend = append(pend, Pendencia{
			Severidade: SeveridadeErro,
			Contexto:   "baseValue",
			Mensagem:   "valor base deve ser positivo",
		})
	}
	if len(p.Prazos) == 0 {
		pend = append(pend, Pendencia{
			Severidade: SeveridadeErro,
			Contexto:   "terms",
			Mensagem:   "informe ao menos um prazo",
		})
	}
	if p.DataReferencia.IsZero() {
		pend = append(pend, Pendencia{
			Severidade: SeveridadeErro,
			Contexto:   "referenceDate",
			Mensagem:   "informe a data de referência",
		})
	}
	return pend
}

// ordenar aplica o rank explícito quando presente; sem rank vale a ordem de
// declaração das taxas, e ranks iguais desempatam por nome do banco.
func ordenar(ofertas []Oferta) {
	sort.SliceStable(ofertas, func(a, b int) bool {
		ra, rb := rankEfetivo(ofertas[a].Rank), rankEfetivo(ofertas[b].Rank)
		if ra != rb {
			return ra < rb
		}
		if ofertas[a].Rank > 0 && ofertas[a].Rank == ofertas[b].Rank {
			return ofertas[a].BancoNome < ofertas[b].BancoNome
		}
		return false
	})
}

func rankEfetivo(r int) int {
	if r <= 0 {
		return math.MaxInt
	}
	return r
}
