package convenio

import (
	"testing"
	"time"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func convenioFixture() *Convenio {
	return &Convenio{
		ID:     "inss",
		Rotulo: "INSS",
		Janelas: []Janela{
			{ID: "j-2024", Inicio: dia(2024, 1, 1), Fim: dia(2024, 12, 31)},
			{ID: "j-2025", Inicio: dia(2025, 1, 1), Fim: dia(2025, 12, 31)},
		},
	}
}

func TestJanelaVigente(t *testing.T) {
	c := convenioFixture()

	if j := JanelaVigente(c, dia(2024, 3, 1)); j == nil || j.ID != "j-2024" {
		t.Fatalf("esperava j-2024, veio %+v", j)
	}
	// pontas inclusivas
	if j := JanelaVigente(c, dia(2024, 1, 1)); j == nil || j.ID != "j-2024" {
		t.Errorf("início da janela deveria contar como vigente")
	}
	if j := JanelaVigente(c, dia(2024, 12, 31)); j == nil || j.ID != "j-2024" {
		t.Errorf("fim da janela deveria contar como vigente")
	}
	// hora do dia não importa
	meioDia := time.Date(2024, 12, 31, 15, 30, 0, 0, time.UTC)
	if j := JanelaVigente(c, meioDia); j == nil || j.ID != "j-2024" {
		t.Errorf("comparação deveria ser por dia de calendário")
	}
}

func TestJanelaVigenteForaDeVigencia(t *testing.T) {
	c := &Convenio{Janelas: []Janela{
		{ID: "unica", Inicio: dia(2024, 1, 1), Fim: dia(2024, 12, 31)},
	}}
	// um dia após o fim da única janela: nada vigente, cotação bloqueada
	if j := JanelaVigente(c, dia(2025, 1, 1)); j != nil {
		t.Fatalf("esperava nil, veio %+v", j)
	}
	if j := JanelaVigente(nil, dia(2024, 6, 1)); j != nil {
		t.Errorf("convênio nil deveria dar nil")
	}
}

func TestJanelasSobrepostas(t *testing.T) {
	c := &Convenio{Janelas: []Janela{
		{ID: "a", Inicio: dia(2024, 1, 1), Fim: dia(2024, 6, 30)},
		{ID: "b", Inicio: dia(2024, 6, 1), Fim: dia(2024, 12, 31)},
	}}
	// primeira declarada vence
	if j := JanelaVigente(c, dia(2024, 6, 15)); j == nil || j.ID != "a" {
		t.Errorf("sobreposição: primeira declarada deveria vencer, veio %+v", j)
	}
	if vigentes := JanelasVigentes(c, dia(2024, 6, 15)); len(vigentes) != 2 {
		t.Errorf("esperava 2 janelas vigentes, veio %d", len(vigentes))
	}
}
