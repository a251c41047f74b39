// Package periodo resolve as etiquetas de período de consulta/relatório em
// intervalos concretos de datas.
package periodo

import (
	"time"

	"github.com/matheusvr/estoque-chapas/internal/domain"
)

// Filtro é a etiqueta de período suportada pelas consultas e relatórios.
type Filtro string

const (
	Hoje   Filtro = "hoje"   // janela rolante de 24h, não o dia de calendário
	Semana Filtro = "semana" // semana de calendário, começando no domingo
	Mes    Filtro = "mes"    // mês de calendário corrente
	Todos  Filtro = "todos"  // sem filtro de data; vale o teto de linhas
)

// Limites de linhas aplicados às consultas do histórico. Sem filtro de data a
// consulta seria ilimitada, então Todos recebe um teto protetor maior.
const (
	limitePeriodo = 20
	limiteTodos   = 500
)

// Intervalo delimita [Inicio, Fim]; ponteiro nil significa sem limite.
type Intervalo struct {
	Inicio *time.Time
	Fim    *time.Time
}

// Resolver mapeia a etiqueta para o intervalo concreto relativo a agora.
// Etiqueta desconhecida devolve ErrEntradaInvalida.
func Resolver(filtro Filtro, agora time.Time) (Intervalo, error) {
	switch filtro {
	case Hoje:
		inicio := agora.Add(-24 * time.Hour)
		return Intervalo{Inicio: &inicio, Fim: &agora}, nil
	case Semana:
		// Domingo 00:00:00 da semana de agora até o sábado 23:59:59 seguinte.
		dia := inicioDoDia(agora)
		inicio := dia.AddDate(0, 0, -int(agora.Weekday()))
		fim := inicio.AddDate(0, 0, 6).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		return Intervalo{Inicio: &inicio, Fim: &fim}, nil
	case Mes:
		inicio := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location())
		fim := inicio.AddDate(0, 1, 0).Add(-time.Second)
		return Intervalo{Inicio: &inicio, Fim: &fim}, nil
	case Todos:
		return Intervalo{}, nil
	default:
		return Intervalo{}, domain.ErrEntradaInvalida
	}
}

// LimiteLinhas devolve o teto de linhas da consulta para o filtro: folgado
// para períodos delimitados, protetor quando não há filtro de data.
func LimiteLinhas(filtro Filtro) int {
	if filtro == Todos {
		return limiteTodos
	}
	return limitePeriodo
}

// Valida informa se a etiqueta é conhecida.
func Valida(filtro Filtro) bool {
	switch filtro {
	case Hoje, Semana, Mes, Todos:
		return true
	}
	return false
}

func inicioDoDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
