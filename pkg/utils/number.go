package utils

import "github.com/shopspring/decimal"

// RoundMoney arredonda para duas casas, como exibido nas telas
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d.Round(2)
}

// FormatMoney formata com separador de milhar e no máximo duas casas decimais
func FormatMoney(d decimal.Decimal) string {
	s := RoundMoney(d).String()

	sign := ""
	if len(s) > 0 && s[0] == '-' {
		sign, s = "-", s[1:]
	}

	intPart, frac := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, frac = s[:i], s[i:]
			break
		}
	}

	grouped := make([]byte, 0, len(intPart)+len(intPart)/3)
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, intPart[i])
	}

	return sign + string(grouped) + frac
}

// WholeInt64 converte d para int64 quando d é inteiro e cabe no intervalo de int64
func WholeInt64(d decimal.Decimal) (int64, bool) {
	if !d.IsInteger() {
		return 0, false
	}

	n := d.BigInt()
	if !n.IsInt64() {
		return 0, false
	}
	return n.Int64(), true
}
