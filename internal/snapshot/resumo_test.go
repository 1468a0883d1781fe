package snapshot

import (
	"testing"

	"github.com/ConsigMais/motor-cotacao/internal/oferta"
)

func TestFormatarMoeda(t *testing.T) {
	casos := []struct {
		valor   float64
		querido string
	}{
		{350, "R$ 350,00"},
		{1234.5, "R$ 1.234,50"},
		{12594.38, "R$ 12.594,38"},
	}
	for _, c := range casos {
		if got := FormatarMoeda(c.valor); got != c.querido {
			t.Errorf("FormatarMoeda(%v): esperava %q, veio %q", c.valor, c.querido, got)
		}
	}
}

func TestResumirSimulacao(t *testing.T) {
	sim := simulacaoFixture(t)
	r := ResumirSimulacao(&sim)
	if r.Titulo != "INSS · Empréstimo" {
		t.Errorf("título errado: %q", r.Titulo)
	}
	// uma linha por condição (72 e 84 meses)
	if len(r.Linhas) != 2 {
		t.Fatalf("esperava 2 linhas, veio %d", len(r.Linhas))
	}
	if r.Linhas[0].Rotulo != "Banco Alfa · 72x" {
		t.Errorf("rótulo errado: %q", r.Linhas[0].Rotulo)
	}
}

func TestResumirToleraParcial(t *testing.T) {
	// nil e snapshot pela metade não podem estourar
	if r := ResumirSimulacao(nil); len(r.Linhas) != 0 || r.Titulo != "" {
		t.Errorf("resumo de nil deveria ser vazio: %+v", r)
	}
	if r := ResumirProposta(nil); len(r.Linhas) != 0 {
		t.Errorf("resumo de proposta nil deveria ser vazio")
	}
	if r := ResumirNegocio(nil); len(r.Linhas) != 0 {
		t.Errorf("resumo de negócio nil deveria ser vazio")
	}

	parcial := &Simulacao{Ofertas: []oferta.Oferta{
		{ID: "sem-nome", Condicoes: []oferta.Condicao{{Meses: 72}}},
	}}
	r := ResumirSimulacao(parcial)
	if len(r.Linhas) != 1 {
		t.Fatalf("snapshot parcial deveria render resumo: %+v", r)
	}
	if r.Linhas[0].Rotulo != "sem-nome · 72x" {
		t.Errorf("banco ausente deveria cair para o id: %q", r.Linhas[0].Rotulo)
	}
}

func TestResumirProposta(t *testing.T) {
	sim := simulacaoFixture(t)
	of := sim.Ofertas[0]
	prop := MontarProposta(sim, "sim-1",
		[]ParSelecionado{{OfertaID: of.ID, CondicaoID: of.Condicoes[1].ID}},
		"Olá, segue a proposta", PDF{NomeArquivo: "proposta.pdf"})

	r := ResumirProposta(&prop)
	// só a condição selecionada + mensagem + pdf
	if len(r.Linhas) != 3 {
		t.Fatalf("esperava 3 linhas, veio %d: %+v", len(r.Linhas), r.Linhas)
	}
	if r.Linhas[0].Rotulo != "Banco Alfa · 84x" {
		t.Errorf("deveria resumir só o par selecionado: %q", r.Linhas[0].Rotulo)
	}
	if r.Linhas[1].Valor != "Olá, segue a proposta" || r.Linhas[2].Valor != "proposta.pdf" {
		t.Errorf("mensagem/pdf errados: %+v", r.Linhas[1:])
	}
}

func TestResumirNegocio(t *testing.T) {
	n := &Negocio{
		Kind: KindNegocio, Versao: VersaoAtual,
		Banco: "Banco Alfa", Produto: "Empréstimo",
		PrazoMeses: 72, Parcela: 350, ValorLiquido: 12544.38, ValorTotal: 25200,
		FechadoEm: dia(2024, 4, 15),
	}
	r := ResumirNegocio(n)
	if r.Titulo != "Banco Alfa · Empréstimo" {
		t.Errorf("título errado: %q", r.Titulo)
	}
	achouData := false
	for _, l := range r.Linhas {
		if l.Rotulo == "fechado em" && l.Valor == "15/04/2024" {
			achouData = true
		}
	}
	if !achouData {
		t.Errorf("data de fechamento ausente do resumo: %+v", r.Linhas)
	}
}
