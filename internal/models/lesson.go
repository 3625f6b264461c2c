package models

// Lesson describes a unit of study: a theme plus the vocabulary the
// generated materials should be built around.
type Lesson struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Vocabulary []string `json:"vocabulary"`
	Theme      string   `json:"theme"`
	IsCustom   bool     `json:"isCustom"`
}

// FlashcardData is a single vocabulary flashcard.
type FlashcardData struct {
	English     string `json:"english"`
	Spanish     string `json:"spanish"`
	Example     string `json:"example"`
	Conjugation string `json:"conjugation,omitempty"`
}

// FillInTheBlankExercise is one gap-fill question, e.g.
// "My mother ___ a doctor." with answer "is".
type FillInTheBlankExercise struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GeneratedLessonMaterials bundles everything the AI produces for one
// lesson.
type GeneratedLessonMaterials struct {
	ReadingText           string          `json:"readingText"`
	Flashcards            []FlashcardData `json:"flashcards"`
	ChatSystemInstruction string          `json:"chatSystemInstruction"`
	Exercises             struct {
		FillInTheBlank []FillInTheBlankExercise `json:"fillInTheBlank"`
	} `json:"exercises"`
}

// PronunciationWord is the per-word verdict of a pronunciation report.
type PronunciationWord struct {
	Word      string `json:"word"`
	IsCorrect bool   `json:"isCorrect"`
}

// PronunciationFeedback is the simulated pronunciation report for a
// read-aloud text.
type PronunciationFeedback struct {
	Words             []PronunciationWord `json:"words"`
	PhonemesToImprove []string            `json:"phonemesToImprove"`
}

// WordDefinition is a short dictionary entry for a single word.
type WordDefinition struct {
	Translation string `json:"translation"`
	Overview    string `json:"overview"`
}

// WordCorrection is one {original, corrected} pair extracted from a
// chat reply's correction trailer.
type WordCorrection struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
}

// DefaultLessons is the compiled-in lesson catalog. Custom lessons are
// stored separately and appended by the lesson service.
var DefaultLessons = []Lesson{
	{
		ID:         "default-1",
		Title:      "Unidad 1: Saludos e Introducciones",
		Vocabulary: []string{"hello", "goodbye", "name", "is", "are", "my", "your", "what"},
		Theme:      "Conocer a alguien por primera vez y presentarse.",
		IsCustom:   false,
	},
	{
		ID:         "default-2",
		Title:      "Unidad 2: Mi Familia",
		Vocabulary: []string{"family", "mother", "father", "sister", "brother", "have", "has", "this is"},
		Theme:      "Hablar sobre los miembros de tu familia inmediata.",
		IsCustom:   false,
	},
	{
		ID:         "default-3",
		Title:      "Unidad 3: Comida que me Gusta",
		Vocabulary: []string{"food", "like", "eat", "drink", "apple", "banana", "pizza", "water", "I like"},
		Theme:      "Expresar preferencias sobre diferentes tipos de comida y bebida.",
		IsCustom:   false,
	},
}
