// internal/convenio/janela.go
package convenio

import "time"

// JanelaVigente devolve a primeira janela do convênio que cobre a data
// (inclusive nas duas pontas), ou nil quando nenhuma cobre. Quem chama deve
// tratar nil como "cotação bloqueada", nunca assumir uma janela padrão.
//
// Empate por sobreposição: vence a primeira declarada. Comportamento herdado
// do sistema original; ver JanelasVigentes para detectar ambiguidade.
func JanelaVigente(c *Convenio, data time.Time) *Janela {
	if c == nil {
		return nil
	}
	dia := truncarDia(data)
	for i := range c.Janelas {
		j := &c.Janelas[i]
		if cobre(j, dia) {
			return j
		}
	}
	return nil
}

// JanelasVigentes devolve todas as janelas que cobrem a data. Mais de uma
// significa configuração sobreposta; o agregador transforma isso em aviso.
func JanelasVigentes(c *Convenio, data time.Time) []Janela {
	if c == nil {
		return nil
	}
	dia := truncarDia(data)
	var ativas []Janela
	for _, j := range c.Janelas {
		if cobre(&j, dia) {
			ativas = append(ativas, j)
		}
	}
	return ativas
}

func cobre(j *Janela, dia time.Time) bool {
	inicio := truncarDia(j.Inicio)
	fim := truncarDia(j.Fim)
	return !dia.Before(inicio) && !dia.After(fim)
}

// truncarDia ignora hora/fuso: vigência é comparada por dia de calendário.
func truncarDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
