// internal/snapshot/resumo.go
package snapshot

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Resumo é uma projeção somente-leitura para exibição. Campo ausente no
// snapshot vira valor vazio no resumo, nunca exceção: resumos precisam
// funcionar sobre snapshots legados pela metade.
type Resumo struct {
	Titulo string        `json:"title"`
	Linhas []LinhaResumo `json:"lines"`
}

// LinhaResumo é um par rótulo/valor já formatado.
type LinhaResumo struct {
	Rotulo string `json:"label"`
	Valor  string `json:"value"`
}

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatarMoeda formata um valor em reais no padrão brasileiro.
func FormatarMoeda(v float64) string {
	return ptBR.Sprintf("R$ %.2f", v)
}

// ResumirSimulacao agrupa as condições por oferta, uma linha por condição.
func ResumirSimulacao(s *Simulacao) Resumo {
	if s == nil {
		return Resumo{}
	}
	r := Resumo{Titulo: tituloOuVazio(s.Convenio.Rotulo, s.Produto.Rotulo)}
	for _, of := range s.Ofertas {
		banco := of.BancoNome
		if banco == "" {
			banco = of.ID
		}
		for _, c := range of.Condicoes {
			r.Linhas = append(r.Linhas, LinhaResumo{
				Rotulo: fmt.Sprintf("%s · %dx", banco, c.Meses),
				Valor: fmt.Sprintf("%s / líq. %s",
					FormatarMoeda(c.Parcela), FormatarMoeda(c.ValorLiquido)),
			})
		}
	}
	return r
}

// ResumirProposta resume só as condições selecionadas, mais mensagem e PDF.
func ResumirProposta(p *Proposta) Resumo {
	if p == nil {
		return Resumo{}
	}
	r := Resumo{Titulo: tituloOuVazio(p.Simulacao.Convenio.Rotulo, p.Simulacao.Produto.Rotulo)}
	for _, par := range p.Selecionados {
		for _, of := range p.Simulacao.Ofertas {
			if of.ID != par.OfertaID {
				continue
			}
			for _, c := range of.Condicoes {
				if c.ID != par.CondicaoID {
					continue
				}
				r.Linhas = append(r.Linhas, LinhaResumo{
					Rotulo: fmt.Sprintf("%s · %dx", of.BancoNome, c.Meses),
					Valor: fmt.Sprintf("%s / líq. %s",
						FormatarMoeda(c.Parcela), FormatarMoeda(c.ValorLiquido)),
				})
			}
		}
	}
	if p.Mensagem != "" {
		r.Linhas = append(r.Linhas, LinhaResumo{Rotulo: "mensagem", Valor: p.Mensagem})
	}
	if p.PDF.NomeArquivo != "" {
		r.Linhas = append(r.Linhas, LinhaResumo{Rotulo: "pdf", Valor: p.PDF.NomeArquivo})
	}
	return r
}

// ResumirNegocio projeta os termos congelados do fechamento.
func ResumirNegocio(n *Negocio) Resumo {
	if n == nil {
		return Resumo{}
	}
	r := Resumo{Titulo: tituloOuVazio(n.Banco, n.Produto)}
	if n.PrazoMeses > 0 {
		r.Linhas = append(r.Linhas, LinhaResumo{Rotulo: "prazo", Valor: fmt.Sprintf("%d meses", n.PrazoMeses)})
	}
	r.Linhas = append(r.Linhas,
		LinhaResumo{Rotulo: "parcela", Valor: FormatarMoeda(n.Parcela)},
		LinhaResumo{Rotulo: "líquido", Valor: FormatarMoeda(n.ValorLiquido)},
		LinhaResumo{Rotulo: "total", Valor: FormatarMoeda(n.ValorTotal)},
	)
	if !n.FechadoEm.IsZero() {
		r.Linhas = append(r.Linhas, LinhaResumo{Rotulo: "fechado em", Valor: n.FechadoEm.Format("02/01/2006")})
	}
	return r
}

func tituloOuVazio(partes ...string) string {
	titulo := ""
	for _, p := range partes {
		if p == "" {
			continue
		}
		if titulo != "" {
			titulo += " · "
		}
		titulo += p
	}
	return titulo
}
