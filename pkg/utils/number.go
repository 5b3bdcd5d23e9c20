package utils

import "math"

// RoundWithTwoDecimalPlace arredonda um valor para duas casas decimais
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SanitizeCount normaliza contagens vindas do banco: valores ausentes ou
// negativos são tratados como zero antes de qualquer soma
func SanitizeCount(valid bool, value int64) int {
	if !valid || value < 0 {
		return 0
	}

	return int(value)
}
