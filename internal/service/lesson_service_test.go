package service

import (
	"context"
	"strings"
	"testing"

	"practicego/internal/models"
)

type kvFake struct {
	data map[string]string
}

func newKVFake() *kvFake {
	return &kvFake{data: make(map[string]string)}
}

func (f *kvFake) Get(key string) (string, bool, error) {
	value, ok := f.data[key]
	return value, ok, nil
}

func (f *kvFake) Set(key, value string) error {
	f.data[key] = value
	return nil
}

type fakeGenerator struct {
	extracted *models.Lesson
}

func (f *fakeGenerator) GenerateLessonMaterials(ctx context.Context, lesson models.Lesson) (*models.GeneratedLessonMaterials, error) {
	return &models.GeneratedLessonMaterials{ReadingText: "A story about " + lesson.Theme}, nil
}

func (f *fakeGenerator) GenerateExercises(ctx context.Context, lesson models.Lesson, count int) ([]models.FillInTheBlankExercise, error) {
	exercises := make([]models.FillInTheBlankExercise, count)
	return exercises, nil
}

func (f *fakeGenerator) ExtractLesson(ctx context.Context, documentText string) (*models.Lesson, error) {
	return f.extracted, nil
}

func TestLessonsDefaultCatalog(t *testing.T) {
	svc := NewLessonService(newKVFake(), &fakeGenerator{})

	lessons := svc.Lessons()
	if len(lessons) != len(models.DefaultLessons) {
		t.Fatalf("got %d lessons, want %d defaults", len(lessons), len(models.DefaultLessons))
	}
	if lessons[0].ID != "default-1" {
		t.Errorf("first lesson ID = %q, want default-1", lessons[0].ID)
	}
}

func TestCreateCustomLesson(t *testing.T) {
	store := newKVFake()
	svc := NewLessonService(store, &fakeGenerator{})

	lesson, err := svc.CreateCustomLesson("Los Animales", "Hablar de animales.", []string{"dog", "cat", " bird ", ""})
	if err != nil {
		t.Fatalf("CreateCustomLesson() error = %v", err)
	}
	if !lesson.IsCustom {
		t.Error("created lesson should be custom")
	}
	if !strings.HasPrefix(lesson.ID, "custom-") {
		t.Errorf("lesson ID = %q, want custom- prefix", lesson.ID)
	}
	if len(lesson.Vocabulary) != 3 {
		t.Errorf("vocabulary = %v, blank entries should be dropped", lesson.Vocabulary)
	}

	// Survives a reload through the store
	again := NewLessonService(store, &fakeGenerator{})
	got, err := again.GetLesson(lesson.ID)
	if err != nil {
		t.Fatalf("GetLesson() after reload error = %v", err)
	}
	if got.Title != "Los Animales" {
		t.Errorf("reloaded title = %q", got.Title)
	}
}

func TestCreateCustomLessonValidation(t *testing.T) {
	svc := NewLessonService(newKVFake(), &fakeGenerator{})

	tests := []struct {
		name       string
		title      string
		vocabulary []string
	}{
		{name: "empty title", title: "  ", vocabulary: []string{"dog"}},
		{name: "no vocabulary", title: "Lección", vocabulary: nil},
		{name: "only blank vocabulary", title: "Lección", vocabulary: []string{" ", ""}},
		{name: "too many words", title: "Lección", vocabulary: make([]string, 51)},
	}

	for i := range tests[3].vocabulary {
		tests[3].vocabulary[i] = "word"
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateCustomLesson(tt.title, "", tt.vocabulary); err == nil {
				t.Error("CreateCustomLesson() should fail validation")
			}
		})
	}
}

func TestDeleteCustomLesson(t *testing.T) {
	svc := NewLessonService(newKVFake(), &fakeGenerator{})

	lesson, err := svc.CreateCustomLesson("Temporal", "", []string{"word"})
	if err != nil {
		t.Fatalf("CreateCustomLesson() error = %v", err)
	}

	if err := svc.DeleteCustomLesson(lesson.ID); err != nil {
		t.Fatalf("DeleteCustomLesson() error = %v", err)
	}
	if _, err := svc.GetLesson(lesson.ID); err != ErrLessonNotFound {
		t.Errorf("GetLesson() after delete error = %v, want ErrLessonNotFound", err)
	}

	if err := svc.DeleteCustomLesson("default-1"); err != ErrLessonNotCustom {
		t.Errorf("deleting a default lesson error = %v, want ErrLessonNotCustom", err)
	}
	if err := svc.DeleteCustomLesson("missing"); err != ErrLessonNotFound {
		t.Errorf("deleting a missing lesson error = %v, want ErrLessonNotFound", err)
	}
}

func TestCustomLessonsCorruptBlob(t *testing.T) {
	store := newKVFake()
	store.data[CustomLessonsKey] = "{not json"
	svc := NewLessonService(store, &fakeGenerator{})

	// Corrupt custom lessons must not break the default catalog
	if got := len(svc.Lessons()); got != len(models.DefaultLessons) {
		t.Errorf("got %d lessons with corrupt blob, want %d defaults", got, len(models.DefaultLessons))
	}
}

func TestExtractLessonFromDocument(t *testing.T) {
	generator := &fakeGenerator{extracted: &models.Lesson{
		Title:      "Unidad: El Clima",
		Vocabulary: []string{"rain", "sun", "cloud"},
		Theme:      "Hablar del clima.",
	}}
	svc := NewLessonService(newKVFake(), generator)

	lesson, err := svc.ExtractLessonFromDocument(context.Background(), "It rains a lot in April...")
	if err != nil {
		t.Fatalf("ExtractLessonFromDocument() error = %v", err)
	}
	if !lesson.IsCustom {
		t.Error("extracted lesson should be saved as custom")
	}
	if _, err := svc.GetLesson(lesson.ID); err != nil {
		t.Errorf("extracted lesson was not persisted: %v", err)
	}
}

func TestGenerateMaterialsUnknownLesson(t *testing.T) {
	svc := NewLessonService(newKVFake(), &fakeGenerator{})
	if _, err := svc.GenerateMaterials(context.Background(), "missing"); err != ErrLessonNotFound {
		t.Errorf("GenerateMaterials() error = %v, want ErrLessonNotFound", err)
	}
}
