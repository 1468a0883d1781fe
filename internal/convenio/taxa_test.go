package convenio

import (
	"testing"
	"time"
)

func TestTaxasAtivas(t *testing.T) {
	c := &Convenio{
		ID: "inss",
		Taxas: []Taxa{
			{ID: "ok", ProdutoID: "emprestimo", Ativa: true},
			{ID: "inativa", ProdutoID: "emprestimo", Ativa: false},
			{ID: "outro-produto", ProdutoID: "cartao", Ativa: true},
			{
				ID: "vencida", ProdutoID: "emprestimo", Ativa: true,
				VigenciaInicio: dia(2023, 1, 1),
				VigenciaFim:    dia(2023, 12, 31),
			},
			{
				ID: "futura", ProdutoID: "emprestimo", Ativa: true,
				VigenciaInicio: dia(2025, 1, 1),
			},
			{
				ID: "na-vigencia", ProdutoID: "emprestimo", Ativa: true,
				VigenciaInicio: dia(2024, 1, 1),
				VigenciaFim:    dia(2024, 12, 31),
			},
		},
	}

	ativas := TaxasAtivas(c, "emprestimo", dia(2024, 3, 1))
	if len(ativas) != 2 {
		t.Fatalf("esperava 2 taxas, veio %d: %+v", len(ativas), ativas)
	}
	for _, tx := range ativas {
		if tx.ID != "ok" && tx.ID != "na-vigencia" {
			t.Errorf("taxa indevida passou no filtro: %s", tx.ID)
		}
	}
}

func TestTaxasAtivasVazio(t *testing.T) {
	c := &Convenio{Taxas: []Taxa{{ID: "x", ProdutoID: "cartao", Ativa: true}}}
	if ativas := TaxasAtivas(c, "emprestimo", dia(2024, 3, 1)); len(ativas) != 0 {
		t.Errorf("esperava vazio, veio %d", len(ativas))
	}
	if ativas := TaxasAtivas(nil, "emprestimo", time.Now()); ativas != nil {
		t.Errorf("convênio nil deveria dar nil")
	}
}

func TestOfertaPrazo(t *testing.T) {
	tx := Taxa{Prazos: []int{72, 84}}
	if !tx.OfertaPrazo(72) || tx.OfertaPrazo(36) {
		t.Errorf("OfertaPrazo errou: 72 deveria existir, 36 não")
	}
}
