package snapshot

import (
	"time"

	"github.com/ConsigMais/motor-cotacao/internal/oferta"
)

// Discriminador dos três formatos canônicos. Os literais vêm do contrato
// JSON legado gravado em produção e não podem mudar.
const (
	KindSimulacao = "simulation"
	KindProposta  = "proposal"
	KindNegocio   = "deal"
)

// VersaoAtual é a versão canônica dos snapshots produzidos pelos builders.
// O normalizador aceita versões anteriores e formatos parciais sem versão.
const VersaoAtual = 2

// Ref é um par id/rótulo usado para convênio e produto.
type Ref struct {
	ID     string `json:"id"`
	Rotulo string `json:"label"`
}

// Simulacao é o snapshot canônico de uma simulação — ponto de criação de
// todos os formatos derivados. Nunca carrega flags de seleção: seleção é
// estado transiente de sessão, não dado persistido.
type Simulacao struct {
	Kind       string            `json:"kind"`
	Versao     int               `json:"version"`
	Convenio   Ref               `json:"convenio"`
	Produto    Ref               `json:"product"`
	Ofertas    []oferta.Oferta   `json:"offers"`
	Parametros oferta.Parametros `json:"parameters"`
}

// ParSelecionado referencia uma condição escolhida dentro da simulação embutida.
type ParSelecionado struct {
	OfertaID   string `json:"offerId"`
	CondicaoID string `json:"termId"`
}

// PDF é o metadado do documento gerado para o cliente.
type PDF struct {
	NomeArquivo string `json:"fileName"`
	Status      string `json:"status"`
	URL         string `json:"url"`
}

// Proposta embrulha uma Simulacao e acrescenta a seleção do agente, a
// mensagem para o cliente e o metadado de PDF.
type Proposta struct {
	Kind         string           `json:"kind"`
	Versao       int              `json:"version"`
	SimulacaoID  string           `json:"simulationId"`
	Simulacao    Simulacao        `json:"simulation"`
	Selecionados []ParSelecionado `json:"selectedOffers"`
	Mensagem     string           `json:"message"`
	PDF          PDF              `json:"pdf"`
}

// Negocio é o registro congelado de um fechamento. Independe dos IDs vivos
// de oferta: o negócio pode fechar muito depois de o catálogo mudar.
type Negocio struct {
	Kind         string    `json:"kind"`
	Versao       int       `json:"version"`
	Banco        string    `json:"bank"`
	Produto      string    `json:"product"`
	PrazoMeses   int       `json:"termMonths"`
	Parcela      float64   `json:"installment"`
	ValorLiquido float64   `json:"netAmount"`
	ValorTotal   float64   `json:"totalAmount"`
	FechadoEm    time.Time `json:"closedAt"`
}

// ContemPar informa se a simulação possui o par oferta/condição.
func (s *Simulacao) ContemPar(p ParSelecionado) bool {
	for _, of := range s.Ofertas {
		if of.ID != p.OfertaID {
			continue
		}
		for _, c := range of.Condicoes {
			if c.ID == p.CondicaoID {
				return true
			}
		}
	}
	return false
}
