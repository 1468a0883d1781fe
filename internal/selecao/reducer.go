// internal/selecao/reducer.go
//
// Seleção de pares (oferta, condição) modelada como reducer explícito:
// estado imutável, ação entra, estado novo sai. Nada de estado escondido
// de componente de tela.
package selecao

import "github.com/ConsigMais/motor-cotacao/internal/oferta"

// Item identifica uma condição escolhida dentro de uma oferta.
type Item struct {
	OfertaID   string `json:"offerId"`
	CondicaoID string `json:"termId"`
}

// Selecao é o conjunto ordenado de itens escolhidos. Valor imutável:
// o reducer nunca altera o slice recebido.
type Selecao []Item

// Contem informa se o item já está na seleção.
func (s Selecao) Contem(it Item) bool {
	for _, atual := range s {
		if atual == it {
			return true
		}
	}
	return false
}

// Acao é uma transição do reducer.
type Acao interface{ acao() }

// Alternar marca ou desmarca um par. Idempotente: marcar o que já está
// marcado não muda nada.
type Alternar struct {
	OfertaID   string
	CondicaoID string
	Marcada    bool
}

// Sincronizar ajusta a seleção a um novo lote de ofertas do agregador:
// filtra para os pares ainda válidos e, se nada sobrar mas houver ofertas,
// assume a Reserva (tipicamente a primeira condição de cada oferta). Assim
// a seleção nunca fica apontando para ids que não existem mais.
type Sincronizar struct {
	Validas []Item
	Reserva Selecao
}

// Redefinir substitui a seleção inteira — usado ao alternar entre editar
// uma proposta existente e começar uma simulação nova. O conteúdo externo
// é aceito como está até o próximo ciclo de agregação.
type Redefinir struct {
	Itens Selecao
}

func (Alternar) acao()    {}
func (Sincronizar) acao() {}
func (Redefinir) acao()   {}

// Reduzir aplica a ação e devolve a nova seleção.
func Reduzir(estado Selecao, a Acao) Selecao {
	switch ac := a.(type) {
	case Alternar:
		it := Item{OfertaID: ac.OfertaID, CondicaoID: ac.CondicaoID}
		if ac.Marcada {
			if estado.Contem(it) {
				return estado
			}
			novo := make(Selecao, len(estado), len(estado)+1)
			copy(novo, estado)
			return append(novo, it)
		}
		novo := make(Selecao, 0, len(estado))
		for _, atual := range estado {
			if atual != it {
				novo = append(novo, atual)
			}
		}
		return novo

	case Sincronizar:
		validas := make(map[Item]bool, len(ac.Validas))
		for _, it := range ac.Validas {
			validas[it] = true
		}
		filtrada := make(Selecao, 0, len(estado))
		for _, it := range estado {
			if validas[it] {
				filtrada = append(filtrada, it)
			}
		}
		if len(filtrada) > 0 || len(ac.Validas) == 0 {
			return filtrada
		}
		// reserva também passa pelo filtro: o invariante vale para ela
		reserva := make(Selecao, 0, len(ac.Reserva))
		for _, it := range ac.Reserva {
			if validas[it] {
				reserva = append(reserva, it)
			}
		}
		return reserva

	case Redefinir:
		novo := make(Selecao, len(ac.Itens))
		copy(novo, ac.Itens)
		return novo
	}
	return estado
}

// ChavesDeOfertas extrai todos os pares válidos de um lote de ofertas,
// na forma que Sincronizar espera.
func ChavesDeOfertas(ofertas []oferta.Oferta) []Item {
	var chaves []Item
	for _, of := range ofertas {
		for _, c := range of.Condicoes {
			chaves = append(chaves, Item{OfertaID: of.ID, CondicaoID: c.ID})
		}
	}
	return chaves
}

// PrimeiraCondicaoDeCada monta a seleção-reserva padrão: a primeira
// condição de cada oferta.
func PrimeiraCondicaoDeCada(ofertas []oferta.Oferta) Selecao {
	var sel Selecao
	for _, of := range ofertas {
		if len(of.Condicoes) == 0 {
			continue
		}
		sel = append(sel, Item{OfertaID: of.ID, CondicaoID: of.Condicoes[0].ID})
	}
	return sel
}
