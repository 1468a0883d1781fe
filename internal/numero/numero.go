// internal/numero/numero.go
package numero

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrValorInvalido indica que o valor recebido não pôde ser convertido em número.
var ErrValorInvalido = errors.New("valor numérico inválido")

// Parse converte um valor de origem incerta (payload legado, JSON solto) em float64.
// É o único ponto de coerção numérica do motor: calculadora e normalizador
// passam por aqui, nunca por strconv direto.
func Parse(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrValorInvalido, n.String())
		}
		return f, nil
	case string:
		return parseTexto(n)
	case nil:
		return 0, fmt.Errorf("%w: valor ausente", ErrValorInvalido)
	default:
		return 0, fmt.Errorf("%w: tipo %T", ErrValorInvalido, v)
	}
}

// ParseOuZero é a variante tolerante usada pelo normalizador: campo ilegível vira zero.
func ParseOuZero(v interface{}) float64 {
	f, err := Parse(v)
	if err != nil {
		return 0
	}
	return f
}

// ParseInteiro converte para int truncando a parte decimal.
func ParseInteiro(v interface{}) (int, error) {
	f, err := Parse(v)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// parseTexto aceita tanto "1234.56" quanto o formato brasileiro "1.234,56".
func parseTexto(s string) (float64, error) {
	limpo := strings.TrimSpace(s)
	if limpo == "" {
		return 0, fmt.Errorf("%w: texto vazio", ErrValorInvalido)
	}
	limpo = strings.TrimPrefix(limpo, "R$")
	limpo = strings.TrimSpace(limpo)
	if strings.Contains(limpo, ",") {
		// formato brasileiro: ponto é milhar, vírgula é decimal
		limpo = strings.ReplaceAll(limpo, ".", "")
		limpo = strings.ReplaceAll(limpo, ",", ".")
	}
	f, err := strconv.ParseFloat(limpo, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrValorInvalido, s)
	}
	return f, nil
}

// Centavos arredonda um valor monetário para duas casas decimais.
func Centavos(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
