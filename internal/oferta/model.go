package oferta

import (
	"time"

	"github.com/ConsigMais/motor-cotacao/internal/simulacao"
)

// Tipos de base aceitos nos parâmetros de cotação. Os literais são os mesmos
// gravados nos snapshots, então não podem mudar.
const (
	BaseMargem  = "margin"
	BaseLiquido = "net"
)

// Severidades de pendência: "error" bloqueia o envio da proposta, "warning" não.
const (
	SeveridadeErro  = "error"
	SeveridadeAviso = "warning"
)

// Parametros são os insumos da cotação informados pelo agente.
type Parametros struct {
	TipoBase       string    `json:"baseType"`
	ValorBase      float64   `json:"baseValue"`
	DataReferencia time.Time `json:"referenceDate"`
	Prazos         []int     `json:"terms"`
}

// Calculo registra cada insumo que produziu uma condição — exigido para
// auditoria e para recalcular um resultado idêntico depois. Os campos de
// simulacao.Detalhes entram achatados no JSON.
type Calculo struct {
	TipoBase       string    `json:"baseType"`
	ValorBase      float64   `json:"baseValue"`
	DataReferencia time.Time `json:"referenceDate"`
	JanelaID       string    `json:"windowId"`
	TaxaID         string    `json:"rateId"`
	simulacao.Detalhes
}

// Condicao é um prazo calculado dentro de uma oferta.
type Condicao struct {
	ID           string  `json:"id"`
	Meses        int     `json:"months"`
	Parcela      float64 `json:"installment"`
	ValorLiquido float64 `json:"netAmount"`
	ValorBruto   float64 `json:"grossAmount"`
	Coeficiente  float64 `json:"coefficient"`
	ValorTac     float64 `json:"tacValue"`

	// Selecionada pertence ao estado transiente de seleção da sessão;
	// o builder de snapshot de simulação descarta este campo.
	Selecionada bool `json:"selected,omitempty"`

	Calculo Calculo `json:"calculation"`
}

// Oferta agrupa as condições calculadas de um banco/tabela.
type Oferta struct {
	ID        string     `json:"id"`
	BancoID   string     `json:"bankId"`
	BancoNome string     `json:"bankName"`
	Tabela    string     `json:"table"`
	Rank      int        `json:"rank"`
	Condicoes []Condicao `json:"terms"`
}

// Pendencia é uma falha de cálculo ou de configuração com contexto legível
// (banco + prazo) para o agente.
type Pendencia struct {
	Severidade string `json:"severity"`
	Contexto   string `json:"context"`
	Mensagem   string `json:"message"`
}

// Resultado é a saída do agregador: mesmas entradas, mesma saída, sempre.
type Resultado struct {
	Ofertas    []Oferta    `json:"offers"`
	Parametros Parametros  `json:"parameters"`
	Pendencias []Pendencia `json:"issues"`
}

// Bloqueada informa se alguma pendência impede o envio.
func (r Resultado) Bloqueada() bool {
	for _, p := range r.Pendencias {
		if p.Severidade == SeveridadeErro {
			return true
		}
	}
	return false
}
