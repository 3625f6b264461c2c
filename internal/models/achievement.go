package models

// AchievementID identifies a single achievement in the static catalog.
// The set is closed: IDs outside the catalog are never stored.
type AchievementID string

const (
	// Streak thresholds
	AchievementStreak3  AchievementID = "streak3"
	AchievementStreak7  AchievementID = "streak7"
	AchievementStreak30 AchievementID = "streak30"

	// Lifetime point thresholds
	AchievementPoints100  AchievementID = "points100"
	AchievementPoints500  AchievementID = "points500"
	AchievementPoints1000 AchievementID = "points1000"

	// First-time actions, reported by the calling feature
	AchievementFirstChat      AchievementID = "firstChat"
	AchievementFirstExercise  AchievementID = "firstExercise"
	AchievementFirstDictation AchievementID = "firstDictation"
	AchievementFirstListening AchievementID = "firstListening"

	// Milestones, reported by the calling feature
	AchievementVerbsMaster      AchievementID = "verbsMaster"
	AchievementAllLessons       AchievementID = "allLessons"
	AchievementPronunciationPro AchievementID = "pronunciationPro"
	AchievementWordWatcher      AchievementID = "wordWatcher"
	AchievementSpeakingScenario AchievementID = "speakingScenario"
)

// Achievement describes a catalog entry for display purposes.
type Achievement struct {
	ID          AchievementID `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
}

// AllAchievements is the static achievement catalog. Display strings are
// in Spanish, matching the app's audience.
var AllAchievements = map[AchievementID]Achievement{
	AchievementStreak3:  {ID: AchievementStreak3, Name: "¡En Racha!", Description: "Practica por 3 días seguidos.", Icon: "🔥"},
	AchievementStreak7:  {ID: AchievementStreak7, Name: "Semana Perfecta", Description: "Practica por 7 días seguidos.", Icon: "🗓️"},
	AchievementStreak30: {ID: AchievementStreak30, Name: "Hábito Creado", Description: "Practica por 30 días seguidos.", Icon: "🎯"},

	AchievementPoints100:  {ID: AchievementPoints100, Name: "Principiante", Description: "Gana 100 puntos.", Icon: "⭐"},
	AchievementPoints500:  {ID: AchievementPoints500, Name: "Estudiante", Description: "Gana 500 puntos.", Icon: "✨"},
	AchievementPoints1000: {ID: AchievementPoints1000, Name: "Erudito", Description: "Gana 1000 puntos.", Icon: "🏆"},

	AchievementFirstChat:      {ID: AchievementFirstChat, Name: "¡Hola, Mundo!", Description: "Ten tu primera conversación con Kandy.", Icon: "👋"},
	AchievementFirstExercise:  {ID: AchievementFirstExercise, Name: "Rompiendo el Hielo", Description: "Completa tu primer ejercicio.", Icon: "✍️"},
	AchievementFirstDictation: {ID: AchievementFirstDictation, Name: "Buen Oído", Description: "Completa tu primer dictado.", Icon: "👂"},
	AchievementFirstListening: {ID: AchievementFirstListening, Name: "Amante de los Clásicos", Description: "Completa tu primer quiz de listening.", Icon: "📚"},

	AchievementVerbsMaster:      {ID: AchievementVerbsMaster, Name: "Maestro de Verbos", Description: "Completa la sección de Verbos Esenciales.", Icon: "💪"},
	AchievementAllLessons:       {ID: AchievementAllLessons, Name: "Explorador Curioso", Description: "Completa todas las lecciones por defecto.", Icon: "🗺️"},
	AchievementPronunciationPro: {ID: AchievementPronunciationPro, Name: "Pro de la Pronunciación", Description: "Obtén un 80% o más en una práctica de pronunciación.", Icon: "🎤"},
	AchievementWordWatcher:      {ID: AchievementWordWatcher, Name: "Ojo de Águila", Description: "Corrige 10 palabras en el chat.", Icon: "👀"},
	AchievementSpeakingScenario: {ID: AchievementSpeakingScenario, Name: "Trotamundos", Description: "Completa un escenario con el AI Speaking Buddy.", Icon: "💬"},
}

// IsValid reports whether the ID belongs to the static catalog.
func (id AchievementID) IsValid() bool {
	_, ok := AllAchievements[id]
	return ok
}
