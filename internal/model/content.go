package model

// BlockSize is the number of questions in one authored practice block.
const BlockSize = 10

// swagger:model Question
type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"` // empty for free-text items
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// swagger:model Topic
type Topic struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Icon            Icon       `json:"icon"`
	ManualTheory    string     `json:"manualTheory,omitempty"`
	ManualQuestions []Question `json:"manualQuestions,omitempty"`
}

func (t *Topic) HasQuestions() bool {
	return len(t.ManualQuestions) > 0
}

// BlockCount is ceil(len(questions)/BlockSize).
func (t *Topic) BlockCount() int {
	return (len(t.ManualQuestions) + BlockSize - 1) / BlockSize
}

// Block returns the authored-order slice [i*BlockSize, i*BlockSize+BlockSize), clipped to the bank.
func (t *Topic) Block(i int) []Question {
	start := i * BlockSize
	if i < 0 || start >= len(t.ManualQuestions) {
		return nil
	}
	end := start + BlockSize
	if end > len(t.ManualQuestions) {
		end = len(t.ManualQuestions)
	}
	out := make([]Question, end-start)
	copy(out, t.ManualQuestions[start:end])
	return out
}

func (t *Topic) QuestionIndex(id string) int {
	for i := range t.ManualQuestions {
		if t.ManualQuestions[i].ID == id {
			return i
		}
	}
	return -1
}

// swagger:model Category
type Category struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
	Topics      []Topic `json:"topics"`
}

func (c *Category) TopicIndex(id string) int {
	for i := range c.Topics {
		if c.Topics[i].ID == id {
			return i
		}
	}
	return -1
}
