package report_test

import (
	"testing"

	"github.com/KostinaAnya/Exel-Analyzer/internal/service/report"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		status string
		want   report.Outcome
	}{
		{"Доставлен", report.OutcomeDelivered},
		{"доставлен", report.OutcomeDelivered},
		{"Доставлен.", report.OutcomeDelivered},
		{"Отменён", report.OutcomeCancelled},
		{"Отменён ", report.OutcomeCancelled},
		{"отменен", report.OutcomeCancelled},
		{"ОТМЕНА", report.OutcomeCancelled},
		{"В пути", report.OutcomeOther},
		{"возврат", report.OutcomeOther},
		{"", report.OutcomeOther},
		{"   ", report.OutcomeOther},
		{"12345", report.OutcomeOther},
	}

	for _, tc := range cases {
		if got := report.Classify(tc.status); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.status, got, tc.want)
		}
	}
}
