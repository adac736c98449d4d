package dashboard

import (
	"math"
	"time"
)

// StartOfDay retorna 00:00:00 do dia de t, no fuso de t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay retorna o último instante representável do dia de t.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// IsToday é o único teste de "hoje" usado por visitas e lembretes:
// t pertence ao intervalo fechado [StartOfDay(now), EndOfDay(now)].
// O fuso de referência é o de now.
func IsToday(t, now time.Time) bool {
	return !t.Before(StartOfDay(now)) && !t.After(EndOfDay(now))
}

// CalendarDaysBetween conta a diferença em dias de calendário (não em horas
// decorridas) entre from e to, no fuso de to.
func CalendarDaysBetween(from, to time.Time) int {
	start := StartOfDay(from.In(to.Location()))
	end := StartOfDay(to)
	return int(math.Round(end.Sub(start).Hours() / 24))
}
