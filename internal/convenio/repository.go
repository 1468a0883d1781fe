// internal/convenio/repository.go
package convenio

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para o catálogo de convênios.
type Repository struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// NewRepository cria um novo repositório do catálogo.
func NewRepository(db *gorm.DB, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{DB: db, Log: log}
}

// Create insere um convênio com janelas e taxas associadas.
func (r *Repository) Create(c *Convenio) error {
	if err := r.DB.Create(c).Error; err != nil {
		r.Log.Error("erro ao criar convênio", zap.String("convenio", c.ID), zap.Error(err))
		return err
	}
	return nil
}

// FindByID retorna um convênio pelo ID, pré-carregando janelas e taxas —
// é a consulta que alimenta o resolvedor de janela e o seletor de taxas.
func (r *Repository) FindByID(id string) (*Convenio, error) {
	var c Convenio
	err := r.DB.
		Preload("Janelas").
		Preload("Taxas").
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List retorna todos os convênios, sem associações (para listagens).
func (r *Repository) List() ([]Convenio, error) {
	var lista []Convenio
	err := r.DB.Order("rotulo").Find(&lista).Error
	return lista, err
}

// Update salva alterações em um convênio existente.
func (r *Repository) Update(c *Convenio) error {
	return r.DB.Save(c).Error
}

// Delete remove um convênio (soft delete via gorm.DeletedAt).
func (r *Repository) Delete(c *Convenio) error {
	return r.DB.Delete(c).Error
}

// Count informa quantos convênios existem; usado pelo seed do cmd.
func (r *Repository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&Convenio{}).Count(&n).Error
	return n, err
}
