package utils

import "time"

// ParseDate converte uma data no formato YYYY-MM-DD
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// StartOfDay retorna o primeiro instante do dia da data informada
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay retorna o último instante (segundo) do dia da data informada
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// LastDayOfMonth retorna o último dia do mês para o ano informado
func LastDayOfMonth(year int, month time.Month) int {
	// O dia zero do mês seguinte equivale ao último dia do mês corrente
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthBounds retorna o primeiro e o último instante do mês informado
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := EndOfDay(time.Date(year, month, LastDayOfMonth(year, month), 0, 0, 0, 0, time.UTC))
	return start, end
}

// YearsBetween lista os anos tocados pelo intervalo [start, end]
func YearsBetween(start, end time.Time) []int {
	if end.Before(start) {
		return nil
	}

	years := make([]int, 0, end.Year()-start.Year()+1)
	for y := start.Year(); y <= end.Year(); y++ {
		years = append(years, y)
	}

	return years
}
