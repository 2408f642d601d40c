package models

const (
	ContentVideo      = "video"
	ContentAssignment = "assignment"
	ContentQuiz       = "quiz"
)

// Content is one learning unit inside a module. Type tags which of the
// kind-specific fields are meaningful.
type Content struct {
	ID     string `json:"_id"`
	Title  string `json:"title"`
	Type   string `json:"type"`
	IsFree bool   `json:"isFree"`

	// video
	Description string `json:"description,omitempty"`
	VideoUrl    string `json:"videoUrl,omitempty"`

	// assignment
	Instruction       string `json:"instruction,omitempty"`
	MaxScore          int    `json:"maxScore,omitempty"`
	InstructionPdfUrl string `json:"instructionPdfUrl,omitempty"`

	// quiz
	QuizUrl string `json:"quizUrl,omitempty"`
}

// QuizLink returns the outbound quiz URL. Older records stored the link in
// the description field, so fall back to it when quizUrl is empty.
func (c Content) QuizLink() string {
	if c.QuizUrl != "" {
		return c.QuizUrl
	}
	return c.Description
}
