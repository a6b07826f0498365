package utils

import (
	"fmt"
	"time"
)

var thaiShortMonths = [...]string{
	"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
	"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
}

// buddhistEraOffset converte o ano gregoriano para o calendário budista tailandês
const buddhistEraOffset = 543

// ThaiMonthLabel formata o mês como "ม.ค. 67" (mês abreviado + ano budista com 2 dígitos)
func ThaiMonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %02d", thaiShortMonths[t.Month()-1], (t.Year()+buddhistEraOffset)%100)
}

// ThaiDayLabel formata o dia como "5 ม.ค. 67"
func ThaiDayLabel(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), ThaiMonthLabel(t))
}
