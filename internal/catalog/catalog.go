// Package catalog holds the static mock-interview question set. Questions are
// immutable configuration, not user data, so they never touch the database;
// answers denormalize the question text and metadata at submission time.
package catalog

// Question types.
const (
	TypeBehavioral   = "behavioral"
	TypeTechnical    = "technical"
	TypeSystemDesign = "system-design"
)

// Question difficulties.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Question struct {
	ID         string
	Text       string
	Type       string
	Difficulty string
}

var questions = []Question{
	{
		ID:         "1",
		Text:       "Tell me about a time when you had to work with a difficult team member. How did you handle it?",
		Type:       TypeBehavioral,
		Difficulty: DifficultyMedium,
	},
	{
		ID:         "2",
		Text:       "What is your approach to debugging a complex issue in your code?",
		Type:       TypeTechnical,
		Difficulty: DifficultyMedium,
	},
	{
		ID:         "3",
		Text:       "How would you design a URL shortening service?",
		Type:       TypeSystemDesign,
		Difficulty: DifficultyHard,
	},
	{
		ID:         "4",
		Text:       "Describe a project where you had to learn a new technology quickly. How did you approach it?",
		Type:       TypeBehavioral,
		Difficulty: DifficultyMedium,
	},
	{
		ID:         "5",
		Text:       "What are your strengths and weaknesses as a developer?",
		Type:       TypeBehavioral,
		Difficulty: DifficultyEasy,
	},
}

// Questions returns a copy of the catalog in interview order.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// Find looks a question up by its catalog id.
func Find(id string) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Size reports how many questions a full session covers.
func Size() int {
	return len(questions)
}
