// internal/snapshot/normalizer.go
//
// Toda a tolerância a formatos legados/parciais mora aqui, e só aqui. Os
// builders produzem o formato canônico; o resto do motor nunca lida com
// payload solto.
package snapshot

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/ConsigMais/motor-cotacao/internal/numero"
	"github.com/ConsigMais/motor-cotacao/internal/oferta"
	"github.com/ConsigMais/motor-cotacao/internal/simulacao"
)

// NormalizarSimulacao coage um payload possivelmente antigo/parcial para o
// formato canônico. Devolve nil apenas quando a entrada nem parece um
// snapshot (não é objeto, ou não tem lista de ofertas). Campo numérico
// ilegível vira zero, nunca pânico: dado histórico não se edita.
func NormalizarSimulacao(raw interface{}) *Simulacao {
	sim, _ := normalizarSimulacao(raw)
	return sim
}

// normalizarSimulacao devolve também as flags de seleção inline encontradas
// no payload bruto, alinhadas por índice com as ofertas normalizadas — o
// normalizador de proposta usa isso para reconstruir selectedOffers de
// formatos muito antigos.
func normalizarSimulacao(raw interface{}) (*Simulacao, []ParSelecionado) {
	m, ok := mapa(raw)
	if !ok {
		return nil, nil
	}
	brutas, ok := lista(m["offers"])
	if !ok {
		return nil, nil
	}

	var marcados []ParSelecionado
	ofertas := make([]oferta.Oferta, 0, len(brutas))
	for i, ob := range brutas {
		om, ok := mapa(ob)
		if !ok {
			continue
		}
		of := oferta.Oferta{
			ID:        texto(om["id"]),
			BancoID:   texto(om["bankId"]),
			BancoNome: texto(om["bankName"]),
			Tabela:    texto(om["table"]),
			Rank:      int(numero.ParseOuZero(om["rank"])),
		}
		if of.ID == "" {
			if of.BancoID != "" {
				of.ID = of.BancoID
			} else {
				of.ID = fmt.Sprintf("oferta-%d", i+1)
			}
		}
		condBrutas, _ := lista(om["terms"])
		for _, cb := range condBrutas {
			cm, ok := mapa(cb)
			if !ok {
				continue
			}
			c := oferta.Condicao{
				ID:           texto(cm["id"]),
				Meses:        int(numero.ParseOuZero(cm["months"])),
				Parcela:      numero.ParseOuZero(cm["installment"]),
				ValorLiquido: numero.ParseOuZero(cm["netAmount"]),
				ValorBruto:   numero.ParseOuZero(cm["grossAmount"]),
				Coeficiente:  numero.ParseOuZero(cm["coefficient"]),
				ValorTac:     numero.ParseOuZero(cm["tacValue"]),
				Calculo:      normalizarCalculo(cm["calculation"]),
			}
			// Formatos antigos não gravavam id de condição.
			if c.ID == "" {
				c.ID = fmt.Sprintf("%s-%d", of.ID, c.Meses)
			}
			if booleano(cm["selected"]) {
				marcados = append(marcados, ParSelecionado{OfertaID: of.ID, CondicaoID: c.ID})
			}
			of.Condicoes = append(of.Condicoes, c)
		}
		ofertas = append(ofertas, of)
	}

	sim := Simulacao{
		Kind:       KindSimulacao,
		Versao:     VersaoAtual,
		Convenio:   normalizarRef(m["convenio"]),
		Produto:    normalizarRef(m["product"]),
		Ofertas:    ofertas,
		Parametros: normalizarParametros(m["parameters"]),
	}
	return &sim, marcados
}

// NormalizarProposta aceita o formato canônico, formatos sem a lista
// explícita de seleção (reconstruída das flags inline) e o formato muito
// antigo em que a proposta ERA a própria simulação com ofertas no topo.
func NormalizarProposta(raw interface{}) *Proposta {
	m, ok := mapa(raw)
	if !ok {
		return nil
	}

	simRaw, temSim := m["simulation"]
	if !temSim {
		// formato antigo: campos da simulação direto no topo
		simRaw = raw
	}
	sim, marcados := normalizarSimulacao(simRaw)
	if sim == nil {
		return nil
	}

	var selecionados []ParSelecionado
	if brutos, ok := lista(m["selectedOffers"]); ok {
		for _, sb := range brutos {
			sm, ok := mapa(sb)
			if !ok {
				continue
			}
			par := ParSelecionado{
				OfertaID:   texto(sm["offerId"]),
				CondicaoID: texto(sm["termId"]),
			}
			if par.OfertaID != "" && par.CondicaoID != "" {
				selecionados = append(selecionados, par)
			}
		}
	} else {
		selecionados = marcados
	}

	// Pares órfãos caem fora, como no builder: recalcular simulação
	// depois de escolher é rotina, não defeito.
	validos := make([]ParSelecionado, 0, len(selecionados))
	for _, p := range selecionados {
		if sim.ContemPar(p) {
			validos = append(validos, p)
		}
	}

	return &Proposta{
		Kind:         KindProposta,
		Versao:       VersaoAtual,
		SimulacaoID:  texto(m["simulationId"]),
		Simulacao:    *sim,
		Selecionados: validos,
		Mensagem:     texto(m["message"]),
		PDF:          normalizarPDF(m["pdf"]),
	}
}

// NormalizarNegocio coage um registro de fechamento legado.
func NormalizarNegocio(raw interface{}) *Negocio {
	m, ok := mapa(raw)
	if !ok {
		return nil
	}
	if _, temBanco := m["bank"]; !temBanco {
		if _, temParcela := m["installment"]; !temParcela {
			return nil
		}
	}
	return &Negocio{
		Kind:         KindNegocio,
		Versao:       VersaoAtual,
		Banco:        texto(m["bank"]),
		Produto:      texto(m["product"]),
		PrazoMeses:   int(numero.ParseOuZero(m["termMonths"])),
		Parcela:      numero.ParseOuZero(m["installment"]),
		ValorLiquido: numero.ParseOuZero(m["netAmount"]),
		ValorTotal:   numero.ParseOuZero(m["totalAmount"]),
		FechadoEm:    data(m["closedAt"]),
	}
}

func normalizarRef(v interface{}) Ref {
	m, ok := mapa(v)
	if !ok {
		return Ref{}
	}
	return Ref{ID: texto(m["id"]), Rotulo: texto(m["label"])}
}

func normalizarParametros(v interface{}) oferta.Parametros {
	m, ok := mapa(v)
	if !ok {
		return oferta.Parametros{}
	}
	p := oferta.Parametros{
		TipoBase:       texto(m["baseType"]),
		ValorBase:      numero.ParseOuZero(m["baseValue"]),
		DataReferencia: data(m["referenceDate"]),
	}
	if prazos, ok := lista(m["terms"]); ok {
		for _, pr := range prazos {
			if meses, err := numero.ParseInteiro(pr); err == nil {
				p.Prazos = append(p.Prazos, meses)
			}
		}
	}
	return p
}

func normalizarCalculo(v interface{}) oferta.Calculo {
	m, ok := mapa(v)
	if !ok {
		return oferta.Calculo{}
	}
	return oferta.Calculo{
		TipoBase:       texto(m["baseType"]),
		ValorBase:      numero.ParseOuZero(m["baseValue"]),
		DataReferencia: data(m["referenceDate"]),
		JanelaID:       texto(m["windowId"]),
		TaxaID:         texto(m["rateId"]),
		Detalhes: simulacao.Detalhes{
			TaxaMensal:            numero.ParseOuZero(m["monthlyRate"]),
			TaxaDiaria:            numero.ParseOuZero(m["dailyRate"]),
			CarenciaDias:          int(numero.ParseOuZero(m["graceDays"])),
			PrimeiroVencimento:    data(m["firstDueDate"]),
			ValorPresenteUnitario: numero.ParseOuZero(m["presentValueUnit"]),
			TacPercentual:         numero.ParseOuZero(m["tacPercent"]),
			TacFixa:               numero.ParseOuZero(m["tacFlat"]),
		},
	}
}

func normalizarPDF(v interface{}) PDF {
	m, ok := mapa(v)
	if !ok {
		return PDF{}
	}
	return PDF{
		NomeArquivo: texto(m["fileName"]),
		Status:      texto(m["status"]),
		URL:         texto(m["url"]),
	}
}

func mapa(v interface{}) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	return m, ok
}

func lista(v interface{}) ([]interface{}, bool) {
	l, ok := v.([]interface{})
	return l, ok
}

func texto(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	default:
		return ""
	}
}

func booleano(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true"
	case float64:
		return b != 0
	default:
		return false
	}
}

func data(v interface{}) time.Time {
	s := texto(v)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
