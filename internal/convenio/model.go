package convenio

import (
	"time"

	"gorm.io/gorm"
)

// Convenio representa um convênio de consignado (ex.: INSS, SIAPE) com suas
// janelas de vigência e a tabela de taxas por produto.
type Convenio struct {
	ID        string         `gorm:"primaryKey;size:64" json:"id"`
	Rotulo    string         `gorm:"size:255;not null" json:"rotulo"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	// Janelas em ordem de declaração; espera-se que não se sobreponham,
	// mas o resolvedor tolera sobreposição (primeira vence).
	Janelas []Janela `gorm:"foreignKey:ConvenioID;constraint:OnDelete:CASCADE" json:"janelas"`
	Taxas   []Taxa   `gorm:"foreignKey:ConvenioID;constraint:OnDelete:CASCADE" json:"taxas"`
}

// Janela representa o período em que a configuração de taxas do convênio vale.
// Início e fim são inclusivos. Imutável no momento da cotação.
type Janela struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	ConvenioID string    `gorm:"size:64;not null;index" json:"convenioId"`
	Rotulo     string    `gorm:"size:255" json:"rotulo"`
	Inicio     time.Time `gorm:"not null" json:"inicio"`
	Fim        time.Time `gorm:"not null" json:"fim"`

	// Dias de carência além dos 30 padrão até a primeira parcela.
	CarenciaDias int `gorm:"not null;default:0" json:"carenciaDias"`
}

// Taxa representa uma combinação banco/produto/tabela com taxa mensal e
// prazos ofertados. Precisa estar ativa E vigente na data para ser usada.
type Taxa struct {
	ID         string `gorm:"primaryKey;size:64" json:"id"`
	ConvenioID string `gorm:"size:64;not null;index" json:"convenioId"`
	ProdutoID  string `gorm:"size:64;not null;index" json:"produtoId"`
	BancoID    string `gorm:"size:64;not null" json:"bancoId"`
	BancoNome  string `gorm:"size:255;not null" json:"bancoNome"`
	TabelaID   string `gorm:"size:64" json:"tabelaId"`
	TabelaNome string `gorm:"size:255" json:"tabelaNome"`
	Modalidade string `gorm:"size:100" json:"modalidade"`

	TaxaMensal float64 `gorm:"not null;default:0" json:"taxaMensal"`

	// Prazos ofertados (meses), em JSONB
	Prazos []int `gorm:"type:jsonb;serializer:json" json:"prazos"`

	// TAC: percentual sobre o bruto e/ou valor fixo
	TacPercentual float64 `gorm:"not null;default:0" json:"tacPercentual"`
	TacFixa       float64 `gorm:"not null;default:0" json:"tacFixa"`

	// Vigência própria da taxa, que pode ser mais estreita que a Janela
	VigenciaInicio time.Time `json:"vigenciaInicio"`
	VigenciaFim    time.Time `json:"vigenciaFim"`

	Ativa bool `gorm:"not null;default:false" json:"ativa"`

	// Ordem explícita de exibição; zero significa sem rank
	Rank int `gorm:"not null;default:0" json:"rank"`
}

// OfertaPrazo informa se a taxa oferta o prazo pedido.
func (t Taxa) OfertaPrazo(meses int) bool {
	for _, p := range t.Prazos {
		if p == meses {
			return true
		}
	}
	return false
}

// Migrate cria as tabelas do catálogo no banco.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Convenio{}, &Janela{}, &Taxa{})
}
