// internal/simulacao/calculo.go
package simulacao

import (
	"fmt"
	"math"
	"time"

	"github.com/ConsigMais/motor-cotacao/internal/convenio"
	"github.com/ConsigMais/motor-cotacao/internal/numero"
)

// Entrada reúne os parâmetros de uma simulação de operação. Exatamente um
// entre Margem (modo direto: parcela dada, resolve líquido/bruto) e
// ValorLiquidoAlvo (modo reverso: líquido dado, resolve parcela) deve ser
// informado; valor zero significa "não informado".
type Entrada struct {
	Margem           float64
	ValorLiquidoAlvo float64
	PrazoMeses       int
	DataSimulacao    time.Time
	Janela           *convenio.Janela
	Taxa             *convenio.Taxa
}

// Detalhes captura cada insumo do cálculo. Junto com a Entrada, precisa ser
// suficiente para reproduzir o mesmo resultado — vai para o registro de
// auditoria dos snapshots.
type Detalhes struct {
	TaxaMensal            float64   `json:"monthlyRate"`
	TaxaDiaria            float64   `json:"dailyRate"`
	CarenciaDias          int       `json:"graceDays"`
	PrimeiroVencimento    time.Time `json:"firstDueDate"`
	ValorPresenteUnitario float64   `json:"presentValueUnit"`
	TacPercentual         float64   `json:"tacPercent"`
	TacFixa               float64   `json:"tacFlat"`
}

// Resultado é a saída da simulação de uma operação única.
type Resultado struct {
	Parcela      float64  `json:"installment"`
	ValorLiquido float64  `json:"netAmount"`
	ValorBruto   float64  `json:"grossAmount"`
	Coeficiente  float64  `json:"coefficient"`
	ValorTac     float64  `json:"tacValue"`
	Detalhes     Detalhes `json:"details"`
}

// diasCiclo é o intervalo padrão entre parcelas no modelo de coeficiente diário.
const diasCiclo = 30

// Simular calcula parcela, líquido, bruto, coeficiente e TAC de uma operação.
//
// O coeficiente vem do fator de valor presente por unidade de parcela:
//
//	PVU = Σ_{k=1..n} (1+d)^-(g + 30(k-1))   coef = 1/PVU
//
// onde d é a taxa diária equivalente e g a carência até a primeira parcela
// (30 dias mais a carência extra da janela). Com carência extra zero o
// coeficiente coincide com o fator de anuidade i/(1-(1+i)^-n).
func Simular(e Entrada) (*Resultado, error) {
	if err := validarBase(e); err != nil {
		return nil, err
	}
	if e.Janela == nil {
		return nil, ErrJanelaAusente
	}
	t := e.Taxa
	if t == nil || t.TaxaMensal <= 0 {
		return nil, ErrTaxaInvalida
	}
	if !t.OfertaPrazo(e.PrazoMeses) {
		return nil, fmt.Errorf("%w: %d meses", ErrPrazoNaoOferecido, e.PrazoMeses)
	}
	if t.TacPercentual < 0 || t.TacPercentual >= 1 {
		return nil, ErrTacInvalida
	}

	i := t.TaxaMensal
	d := math.Pow(1+i, 1.0/diasCiclo) - 1
	carencia := diasCiclo + e.Janela.CarenciaDias

	pvu := 0.0
	for k := 0; k < e.PrazoMeses; k++ {
		dias := float64(carencia + diasCiclo*k)
		pvu += math.Pow(1+d, -dias)
	}
	coef := 1 / pvu

	var parcela, bruto float64
	if e.Margem > 0 {
		parcela = e.Margem
		bruto = e.Margem * pvu
	} else {
		bruto = (e.ValorLiquidoAlvo + t.TacFixa) / (1 - t.TacPercentual)
		parcela = numero.Centavos(bruto * coef)
	}

	brutoArred := numero.Centavos(bruto)
	tac := numero.Centavos(bruto*t.TacPercentual + t.TacFixa)
	liquido := numero.Centavos(brutoArred - tac)

	return &Resultado{
		Parcela:      parcela,
		ValorLiquido: liquido,
		ValorBruto:   brutoArred,
		Coeficiente:  coef,
		ValorTac:     tac,
		Detalhes: Detalhes{
			TaxaMensal:            i,
			TaxaDiaria:            d,
			CarenciaDias:          carencia,
			PrimeiroVencimento:    e.DataSimulacao.AddDate(0, 0, carencia),
			ValorPresenteUnitario: pvu,
			TacPercentual:         t.TacPercentual,
			TacFixa:               t.TacFixa,
		},
	}, nil
}

func validarBase(e Entrada) error {
	temMargem := e.Margem != 0
	temAlvo := e.ValorLiquidoAlvo != 0
	switch {
	case temMargem && temAlvo:
		return ErrParametrosConflitantes
	case !temMargem && !temAlvo:
		return ErrParametrosAusentes
	case e.Margem < 0 || e.ValorLiquidoAlvo < 0:
		return ErrValorBaseInvalido
	case e.PrazoMeses <= 0:
		return fmt.Errorf("%w: prazo em meses", ErrValorBaseInvalido)
	case e.DataSimulacao.IsZero():
		return fmt.Errorf("%w: data de simulação", ErrParametrosAusentes)
	}
	return nil
}
