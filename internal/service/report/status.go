package report

import "strings"

// Outcome classifies one order row.
type Outcome string

const (
	OutcomeDelivered Outcome = "delivered"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeOther     Outcome = "other"
)

const (
	deliveredMarker = "доставлен"
	cancelledMarker = "отмен"
)

// Classify maps free-text order status to an outcome by substring
// containment after case folding and ё→е normalization. Real exports vary
// in case, trailing punctuation and the е/ё spelling («Отменён», «отменен.»),
// so exact-match comparison is deliberately not used here. Empty or missing
// status is Other.
func Classify(status string) Outcome {
	s := strings.ToLower(strings.TrimSpace(status))
	s = strings.ReplaceAll(s, "ё", "е")

	switch {
	case strings.Contains(s, deliveredMarker):
		return OutcomeDelivered
	case strings.Contains(s, cancelledMarker):
		return OutcomeCancelled
	default:
		return OutcomeOther
	}
}
