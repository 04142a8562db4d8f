package excel_test

import (
	"testing"

	"github.com/KostinaAnya/Exel-Analyzer/internal/service/excel"
)

func TestNormalizeColumn(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Артикул", "артикул"},
		{"  Статус  ", "статус"},
		{"Сумма итого, руб.", "сумма итого, руб."},
		{"Закупочная\t Цена", "закупочная цена"},
		{"Отменён", "отменен"},
		{"", ""},
		{"   ", ""},
		{"12345", "12345"},
	}

	for _, tc := range cases {
		if got := excel.NormalizeColumn(tc.in); got != tc.want {
			t.Errorf("NormalizeColumn(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
