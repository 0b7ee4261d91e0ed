package quiz

import (
	"fmt"
	"math"
)

// Outcome is the scored result of a finished session
type Outcome struct {
	Score   int  `json:"score"`
	Total   int  `json:"total"`
	Percent int  `json:"percent"`
	Passed  bool `json:"passed"`
}

// Evaluate scores score out of total against passPercent
func Evaluate(score, total, passPercent int) Outcome {
	p := Percent(score, total)
	return Outcome{
		Score:   score,
		Total:   total,
		Percent: p,
		Passed:  p >= passPercent,
	}
}

// Percent returns round(100*score/total), and 0 for an empty quiz
func Percent(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}

func (o Outcome) String() string {
	return fmt.Sprintf("Votre score : %d / %d (%d%%)", o.Score, o.Total, o.Percent)
}
