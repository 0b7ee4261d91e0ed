package view

// Mount point ids exposed by the page skeletons
const (
	ResourcesContainer = "resources-container"

	QuizContainer     = "quiz-container"
	StartScreen       = "start-screen"
	QuestionScreen    = "question-screen"
	ResultsScreen     = "results-screen"
	StartButton       = "start-btn"
	NextButton        = "next-btn"
	RestartButton     = "restart-btn"
	QuestionText      = "question-text"
	AnswerButtons     = "answer-buttons"
	ResultsTitle      = "results-title"
	ResultsScore      = "results-score"
	ConfettiContainer = "confetti-container"
)

// Page is a display tree with a document title
type Page struct {
	Title string   `json:"title"`
	Root  *Element `json:"root"`
}

// NewPage creates an empty page with a body root
func NewPage(title string) *Page {
	return &Page{Title: title, Root: NewElement("main", "app")}
}

// Find returns the element with the given id, depth-first
func (p *Page) Find(id string) *Element {
	if p == nil || p.Root == nil {
		return nil
	}
	return p.Root.Find(id)
}

// Mount returns the container registered under id, or nil when the page
// does not expose it.
func (p *Page) Mount(id string) *Element {
	return p.Find(id)
}

// NewResourcesPage builds the resources page skeleton
func NewResourcesPage() *Page {
	p := NewPage("Ressources")
	p.Root.Append(
		NewElement("h1", "", "page-title").Append(TextNode("Ressources")),
		NewElement("section", ResourcesContainer, "resource-grid"),
	)
	return p
}

// NewQuizPage builds the quiz page skeleton with every quiz mount point.
// Buttons sit inside forms so the page also works without scripts.
func NewQuizPage() *Page {
	p := NewPage("Quiz")

	start := NewElement("section", StartScreen, "screen").Append(
		NewElement("h2", "").Append(TextNode("Testez vos connaissances")),
		form("/quiz/start",
			button(StartButton, "Commencer").SetAttr("type", "submit")),
	)

	answers := NewElement("form", AnswerButtons, "answer-grid").
		SetAttr("method", "post").
		SetAttr("action", "/quiz/answer")

	next := button(NextButton, "Suivant").SetAttr("type", "submit")
	next.Hidden = true

	question := NewElement("section", QuestionScreen, "screen").Append(
		NewElement("div", QuestionText, "question-text"),
		answers,
		form("/quiz/next", next),
	)
	question.Hidden = true

	results := NewElement("section", ResultsScreen, "screen").Append(
		NewElement("h2", ResultsTitle),
		NewElement("p", ResultsScore),
		form("/quiz/restart",
			button(RestartButton, "Recommencer").SetAttr("type", "submit")),
	)
	results.Hidden = true

	p.Root.Append(
		NewElement("div", QuizContainer, "quiz").Append(start, question, results),
		NewElement("div", ConfettiContainer, "confetti-layer"),
	)
	return p
}

func form(action string, children ...*Element) *Element {
	return NewElement("form", "").
		SetAttr("method", "post").
		SetAttr("action", action).
		Append(children...)
}

func button(id, label string) *Element {
	return NewElement("button", id, "btn").Append(TextNode(label))
}
