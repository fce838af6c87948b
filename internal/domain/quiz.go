package domain

// BlankMarker replaces the verb in a quiz sentence.
const BlankMarker = "_____"

// QuizItem is one generated multiple-choice question. It is built per request
// and owned by the caller.
type QuizItem struct {
	Sentence    string   `json:"sentence"`
	Options     []string `json:"options"`
	Correct     string   `json:"correct"`
	Explanation string   `json:"explanation"`
	Hint        string   `json:"hint"`
}
