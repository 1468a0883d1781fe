// internal/simulacao/erros.go
package simulacao

import "errors"

// Erros de parâmetro: rejeitados antes de qualquer cálculo, por campo,
// para a camada de cima poder apontar o input ofensivo.
var (
	ErrParametrosAusentes     = errors.New("informe margem ou valor líquido alvo")
	ErrParametrosConflitantes = errors.New("margem e valor líquido alvo são mutuamente exclusivos")
	ErrValorBaseInvalido      = errors.New("valor base deve ser positivo")
)

// Erros de configuração: viram pendência por oferta no agregador,
// nunca abortam o lote inteiro.
var (
	ErrJanelaAusente     = errors.New("nenhuma janela de vigência para a data")
	ErrTaxaInvalida      = errors.New("taxa sem valor mensal utilizável")
	ErrPrazoNaoOferecido = errors.New("prazo não ofertado pela taxa")
	ErrTacInvalida       = errors.New("TAC percentual fora do intervalo [0,1)")
)
