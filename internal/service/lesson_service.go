package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"practicego/internal/models"
	"practicego/internal/progress"
)

// CustomLessonsKey is the key-value store key the custom lesson list is
// persisted under, as a JSON array.
const CustomLessonsKey = "practicego_custom_lessons"

const maxVocabularyWords = 50

var (
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrLessonTitleEmpty = errors.New("lesson title must not be empty")
	ErrLessonVocabulary = fmt.Errorf("lesson must have between 1 and %d vocabulary words", maxVocabularyWords)
	ErrLessonNotCustom  = errors.New("default lessons cannot be deleted")
)

// LessonGenerator is the slice of the AI client the lesson service
// uses.
type LessonGenerator interface {
	GenerateLessonMaterials(ctx context.Context, lesson models.Lesson) (*models.GeneratedLessonMaterials, error)
	GenerateExercises(ctx context.Context, lesson models.Lesson, count int) ([]models.FillInTheBlankExercise, error)
	ExtractLesson(ctx context.Context, documentText string) (*models.Lesson, error)
}

// LessonService manages the lesson catalog: the compiled-in default
// units plus user-created custom lessons persisted in the key-value
// store.
type LessonService struct {
	store     progress.KeyValueStore
	generator LessonGenerator
}

// NewLessonService creates a new lesson service
func NewLessonService(store progress.KeyValueStore, generator LessonGenerator) *LessonService {
	return &LessonService{store: store, generator: generator}
}

// Lessons returns the full catalog, defaults first
func (s *LessonService) Lessons() []models.Lesson {
	lessons := make([]models.Lesson, 0, len(models.DefaultLessons))
	lessons = append(lessons, models.DefaultLessons...)
	return append(lessons, s.customLessons()...)
}

// GetLesson finds a lesson by ID
func (s *LessonService) GetLesson(id string) (*models.Lesson, error) {
	for _, lesson := range s.Lessons() {
		if lesson.ID == id {
			return &lesson, nil
		}
	}
	return nil, ErrLessonNotFound
}

// CreateCustomLesson validates and persists a new custom lesson,
// assigning it an ID.
func (s *LessonService) CreateCustomLesson(title, theme string, vocabulary []string) (*models.Lesson, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrLessonTitleEmpty
	}

	words := make([]string, 0, len(vocabulary))
	for _, w := range vocabulary {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 || len(words) > maxVocabularyWords {
		return nil, ErrLessonVocabulary
	}

	lesson := models.Lesson{
		ID:         "custom-" + uuid.New().String(),
		Title:      title,
		Vocabulary: words,
		Theme:      strings.TrimSpace(theme),
		IsCustom:   true,
	}

	customs := append(s.customLessons(), lesson)
	if err := s.saveCustomLessons(customs); err != nil {
		return nil, err
	}
	return &lesson, nil
}

// DeleteCustomLesson removes a custom lesson. Default lessons are
// compiled in and cannot be deleted.
func (s *LessonService) DeleteCustomLesson(id string) error {
	lesson, err := s.GetLesson(id)
	if err != nil {
		return err
	}
	if !lesson.IsCustom {
		return ErrLessonNotCustom
	}

	customs := s.customLessons()
	kept := customs[:0]
	for _, l := range customs {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	return s.saveCustomLessons(kept)
}

// GenerateMaterials produces the AI study pack for a lesson
func (s *LessonService) GenerateMaterials(ctx context.Context, lessonID string) (*models.GeneratedLessonMaterials, error) {
	lesson, err := s.GetLesson(lessonID)
	if err != nil {
		return nil, err
	}
	return s.generator.GenerateLessonMaterials(ctx, *lesson)
}

// GenerateMoreExercises produces additional gap-fill exercises for a
// lesson.
func (s *LessonService) GenerateMoreExercises(ctx context.Context, lessonID string, count int) ([]models.FillInTheBlankExercise, error) {
	lesson, err := s.GetLesson(lessonID)
	if err != nil {
		return nil, err
	}
	return s.generator.GenerateExercises(ctx, *lesson, count)
}

// ExtractLessonFromDocument asks the AI to build a lesson from an
// uploaded document's text and saves it as a custom lesson.
func (s *LessonService) ExtractLessonFromDocument(ctx context.Context, documentText string) (*models.Lesson, error) {
	extracted, err := s.generator.ExtractLesson(ctx, documentText)
	if err != nil {
		return nil, err
	}
	return s.CreateCustomLesson(extracted.Title, extracted.Theme, extracted.Vocabulary)
}

// customLessons loads the persisted custom lesson list. A missing or
// unreadable entry yields an empty list so the default catalog always
// works.
func (s *LessonService) customLessons() []models.Lesson {
	value, found, err := s.store.Get(CustomLessonsKey)
	if err != nil {
		log.Printf("Warning: failed to load custom lessons: %v", err)
		return nil
	}
	if !found {
		return nil
	}

	var lessons []models.Lesson
	if err := json.Unmarshal([]byte(value), &lessons); err != nil {
		log.Printf("Warning: discarding corrupt custom lessons: %v", err)
		return nil
	}
	return lessons
}

func (s *LessonService) saveCustomLessons(lessons []models.Lesson) error {
	data, err := json.Marshal(lessons)
	if err != nil {
		return fmt.Errorf("failed to marshal custom lessons: %w", err)
	}
	if err := s.store.Set(CustomLessonsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save custom lessons: %w", err)
	}
	return nil
}
