package quiz

import (
	"strconv"

	"studyhub/internal/model"
	"studyhub/internal/view"
)

// Class names set on answer buttons once the question is answered
const (
	ClassCorrect   = "correct"
	ClassIncorrect = "incorrect"
)

// QuestionView is the rendered form of one question
type QuestionView struct {
	Prompt  *view.Element   `json:"prompt"`
	Answers []*view.Element `json:"answers"`
}

// RenderQuestion builds the descriptors for q in the state held by s.
// It has no side effects.
func RenderQuestion(q model.Question, s *model.QuizSession) QuestionView {
	answers := make([]*view.Element, 0, len(q.Answers))
	for i, a := range q.Answers {
		btn := view.NewElement("button", "", "btn", "answer-btn").
			SetAttr("type", "submit").
			SetAttr("name", "answer").
			SetAttr("value", strconv.Itoa(i)).
			Append(view.TextNode(a.Label))

		if s.Answered {
			btn.Disabled = true
			btn.SetAttr("data-correct", strconv.FormatBool(a.IsCorrect))
			switch {
			case a.IsCorrect:
				btn.AddClass(ClassCorrect)
			case i == s.SelectedIndex:
				btn.AddClass(ClassIncorrect)
			}
		}
		answers = append(answers, btn)
	}

	return QuestionView{
		Prompt:  view.NewElement("p", "", "prompt").Append(view.TextNode(q.Prompt)),
		Answers: answers,
	}
}
