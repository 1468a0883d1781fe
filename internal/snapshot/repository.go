// internal/snapshot/repository.go
package snapshot

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Registro é a linha persistida de um snapshot: o payload JSON é o contrato
// durável — a carga gravada precisa voltar semanticamente idêntica.
type Registro struct {
	ID        string                 `gorm:"primaryKey;size:64" json:"id"`
	Ticket    string                 `gorm:"size:64;not null;index" json:"ticket"`
	Kind      string                 `gorm:"size:20;not null;index" json:"kind"`
	Versao    int                    `gorm:"not null;default:0" json:"version"`
	Payload   map[string]interface{} `gorm:"type:jsonb;serializer:json" json:"payload"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// Migrate cria a tabela de snapshots.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Registro{})
}

// Repository grava e recupera snapshots por ticket de atendimento.
type Repository struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// NewRepository cria um novo repositório de snapshots.
func NewRepository(db *gorm.DB, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{DB: db, Log: log}
}

// SalvarSimulacao persiste um snapshot de simulação e devolve o id do registro.
func (r *Repository) SalvarSimulacao(ticket string, s Simulacao) (string, error) {
	return r.salvar(ticket, KindSimulacao, s.Versao, s)
}

// SalvarProposta persiste um snapshot de proposta.
func (r *Repository) SalvarProposta(ticket string, p Proposta) (string, error) {
	return r.salvar(ticket, KindProposta, p.Versao, p)
}

// SalvarNegocio persiste o registro congelado do fechamento.
func (r *Repository) SalvarNegocio(ticket string, n Negocio) (string, error) {
	return r.salvar(ticket, KindNegocio, n.Versao, n)
}

func (r *Repository) salvar(ticket, kind string, versao int, snap interface{}) (string, error) {
	payload, err := paraMapa(snap)
	if err != nil {
		r.Log.Error("payload de snapshot não serializável",
			zap.String("ticket", ticket), zap.String("kind", kind), zap.Error(err))
		return "", err
	}
	reg := Registro{
		ID:      uuid.NewString(),
		Ticket:  ticket,
		Kind:    kind,
		Versao:  versao,
		Payload: payload,
	}
	if err := r.DB.Create(&reg).Error; err != nil {
		r.Log.Error("erro ao gravar snapshot",
			zap.String("ticket", ticket), zap.String("kind", kind), zap.Error(err))
		return "", err
	}
	r.Log.Info("snapshot gravado",
		zap.String("ticket", ticket), zap.String("kind", kind), zap.String("id", reg.ID))
	return reg.ID, nil
}

// UltimaSimulacao carrega a simulação mais recente do ticket, já passada
// pelo normalizador — o caminho de leitura devolve sempre o formato
// canônico, mesmo para registros gravados por versões antigas.
func (r *Repository) UltimaSimulacao(ticket string) (*Simulacao, error) {
	reg, err := r.ultimo(ticket, KindSimulacao)
	if err != nil {
		return nil, err
	}
	return NormalizarSimulacao(paraInterface(reg.Payload)), nil
}

// UltimaProposta carrega a proposta mais recente do ticket, normalizada.
func (r *Repository) UltimaProposta(ticket string) (*Proposta, error) {
	reg, err := r.ultimo(ticket, KindProposta)
	if err != nil {
		return nil, err
	}
	return NormalizarProposta(paraInterface(reg.Payload)), nil
}

// UltimoNegocio carrega o fechamento mais recente do ticket, normalizado.
func (r *Repository) UltimoNegocio(ticket string) (*Negocio, error) {
	reg, err := r.ultimo(ticket, KindNegocio)
	if err != nil {
		return nil, err
	}
	return NormalizarNegocio(paraInterface(reg.Payload)), nil
}

func (r *Repository) ultimo(ticket, kind string) (*Registro, error) {
	var reg Registro
	err := r.DB.
		Where("ticket = ? AND kind = ?", ticket, kind).
		Order("created_at DESC").
		First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// paraMapa serializa o snapshot tipado para o mapa JSONB persistido.
func paraMapa(snap interface{}) (map[string]interface{}, error) {
	b, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func paraInterface(m map[string]interface{}) interface{} {
	if m == nil {
		return nil
	}
	return m
}
