package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"practicego/internal/models"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

const requestTimeout = 60 * time.Second

// DefaultChatSystemInstruction drives the "Kandy" tutor persona. The
// trailing CORRECTIONS block is the machine-readable protocol the chat
// service parses for the word-correction achievement path.
const DefaultChatSystemInstruction = `You are Kandy, a friendly and patient English tutor for A1 level students.
- Your name is Kandy.
- Keep your responses very short and simple.
- Use only A1 level vocabulary.
- Ask simple, short questions to keep the conversation going (e.g., "What is your name?", "How are you?", "What is your favorite color?").
- Talk about basic topics like introductions, family, food, and daily routines.
- Use emojis to be more friendly. 😊
- If the user makes a spelling or grammar mistake, gently correct them in your conversational response. For example, if they say 'I has a dog', you can say 'That's great! We say "I have a dog". What is your dog's name?'.
- IMPORTANT: After your conversational response, if you detected any mistakes, add a special JSON block on a new line at the very end of your output. The format must be exactly: <!-- CORRECTIONS: [{"original": "word", "corrected": "word"}] -->. Only include this block if there are corrections. Do not include it otherwise. For example, if the user writes "My name are Tom", you should include <!-- CORRECTIONS: [{"original": "are", "corrected": "is"}] -->.`

// fallbackReadingText is served when generation fails, matching the
// app's behavior of never blocking reading practice on the AI.
const fallbackReadingText = "My name is Tom. I have a cat. My cat is white. We play every day."

// Client is a client for the Gemini generateContent API
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// New creates a new Gemini client
func New(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is not set")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

// ChatMessage is one turn of a conversation. Role is "user" or "model".
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// part, content, generateRequest and generateResponse mirror the wire
// format of the generateContent endpoint.
type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
}

type generateRequest struct {
	SystemInstruction *content          `json:"system_instruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// generate sends one generateContent request and returns the text of
// the first candidate.
func (c *Client) generate(ctx context.Context, systemInstruction string, contents []content, cfg *generationConfig) (string, error) {
	request := generateRequest{
		Contents:         contents,
		GenerationConfig: cfg,
	}
	if systemInstruction != "" {
		request.SystemInstruction = &content{Parts: []part{{Text: systemInstruction}}}
	}

	requestData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var response generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if response.Error != nil {
		return "", fmt.Errorf("API error: %s", response.Error.Message)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response candidates returned")
	}

	return strings.TrimSpace(response.Candidates[0].Content.Parts[0].Text), nil
}

// generateJSON asks for an application/json response and unmarshals it
// into target.
func (c *Client) generateJSON(ctx context.Context, prompt string, target interface{}) error {
	text, err := c.generate(ctx, "", []content{
		{Role: "user", Parts: []part{{Text: prompt}}},
	}, &generationConfig{ResponseMIMEType: "application/json"})
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(text), target); err != nil {
		return fmt.Errorf("failed to parse generated JSON: %w", err)
	}
	return nil
}

// Chat runs one conversational turn. The reply may carry the
// CORRECTIONS trailer; callers strip it with ParseCorrections.
func (c *Client) Chat(ctx context.Context, systemInstruction string, history []ChatMessage, message string) (string, error) {
	if systemInstruction == "" {
		systemInstruction = DefaultChatSystemInstruction
	}

	contents := make([]content, 0, len(history)+1)
	for _, m := range history {
		contents = append(contents, content{Role: m.Role, Parts: []part{{Text: m.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	return c.generate(ctx, systemInstruction, contents, nil)
}

// GenerateReadingText produces a very short A1 story. On failure a
// fixed fallback story is returned so reading practice never blocks on
// the AI.
func (c *Client) GenerateReadingText(ctx context.Context) string {
	prompt := "Generate a very simple story for an A1 English learner. It must be between 3 and 5 short sentences. Use basic vocabulary. For example, talk about a cat, a house, or a family. Return only the story text."

	text, err := c.generate(ctx, "", []content{{Role: "user", Parts: []part{{Text: prompt}}}}, nil)
	if err != nil {
		log.Printf("Warning: failed to generate reading text, using fallback: %v", err)
		return fallbackReadingText
	}
	return text
}

// GenerateDictationText produces one short sentence for a dictation
// exercise.
func (c *Client) GenerateDictationText(ctx context.Context) (string, error) {
	prompt := "Generate one short, simple English sentence for an A1 learner's dictation exercise. Use basic vocabulary, 5 to 8 words. Return only the sentence."

	return c.generate(ctx, "", []content{{Role: "user", Parts: []part{{Text: prompt}}}}, nil)
}

// GenerateLessonMaterials builds the full study pack for a lesson:
// reading text, flashcards, a chat system instruction themed on the
// lesson, and fill-in-the-blank exercises.
func (c *Client) GenerateLessonMaterials(ctx context.Context, lesson models.Lesson) (*models.GeneratedLessonMaterials, error) {
	prompt := fmt.Sprintf(`Create study materials for an A1 English lesson.
Lesson title: %q
Theme: %q
Vocabulary to practice: %s

Return a JSON object with exactly these fields:
- "readingText": a simple story of 3-5 short sentences using the vocabulary
- "flashcards": an array of objects {"english", "spanish", "example"} covering each vocabulary item (spanish is the Spanish translation, example a short A1 sentence)
- "chatSystemInstruction": a system instruction for a friendly A1 English tutor named Kandy that keeps the conversation on the lesson theme
- "exercises": {"fillInTheBlank": array of 5 objects {"question", "answer"} where question contains ___ for the missing word}`,
		lesson.Title, lesson.Theme, strings.Join(lesson.Vocabulary, ", "))

	materials := &models.GeneratedLessonMaterials{}
	if err := c.generateJSON(ctx, prompt, materials); err != nil {
		return nil, fmt.Errorf("failed to generate lesson materials: %w", err)
	}
	return materials, nil
}

// GenerateExercises produces additional fill-in-the-blank items for a
// lesson.
func (c *Client) GenerateExercises(ctx context.Context, lesson models.Lesson, count int) ([]models.FillInTheBlankExercise, error) {
	if count <= 0 {
		count = 5
	}
	prompt := fmt.Sprintf(`Create %d new fill-in-the-blank exercises for an A1 English lesson themed %q using this vocabulary: %s.
Return a JSON array of objects {"question", "answer"} where question contains ___ for the missing word.`,
		count, lesson.Theme, strings.Join(lesson.Vocabulary, ", "))

	var exercises []models.FillInTheBlankExercise
	if err := c.generateJSON(ctx, prompt, &exercises); err != nil {
		return nil, fmt.Errorf("failed to generate exercises: %w", err)
	}
	return exercises, nil
}

// GeneratePronunciationFeedback produces a simulated per-word
// pronunciation report for a read-aloud text.
func (c *Client) GeneratePronunciationFeedback(ctx context.Context, text string) (*models.PronunciationFeedback, error) {
	prompt := fmt.Sprintf(`Analyze the following A1 English text and create a simulated pronunciation report. The text is: %q.
Follow these rules:
1. Mark about 80-90%% of the words as correct.
2. Randomly select 1 or 2 words and mark them as incorrect.
3. For the incorrect words, suggest 2-3 simple phonemes to improve, like "/æ/ as in cat" or "/iː/ as in see".
Return a JSON object {"words": [{"word", "isCorrect"}], "phonemesToImprove": ["..."]}.`, text)

	feedback := &models.PronunciationFeedback{}
	if err := c.generateJSON(ctx, prompt, feedback); err != nil {
		return nil, fmt.Errorf("failed to generate pronunciation feedback: %w", err)
	}

	return alignFeedback(text, feedback), nil
}

// alignFeedback maps the model's verdicts back onto the words of the
// original text, defaulting to correct for words the model skipped.
func alignFeedback(text string, feedback *models.PronunciationFeedback) *models.PronunciationFeedback {
	verdicts := make(map[string]bool, len(feedback.Words))
	for _, w := range feedback.Words {
		verdicts[normalizeWord(w.Word)] = w.IsCorrect
	}

	original := strings.Fields(text)
	aligned := make([]models.PronunciationWord, 0, len(original))
	for _, word := range original {
		isCorrect, found := verdicts[normalizeWord(word)]
		if !found {
			isCorrect = true
		}
		aligned = append(aligned, models.PronunciationWord{Word: strings.Trim(word, ".,"), IsCorrect: isCorrect})
	}

	return &models.PronunciationFeedback{
		Words:             aligned,
		PhonemesToImprove: feedback.PhonemesToImprove,
	}
}

func normalizeWord(word string) string {
	return strings.ToLower(strings.Trim(word, ".,!?"))
}

// LookupWord fetches a short dictionary entry for a single word.
func (c *Client) LookupWord(ctx context.Context, word string) (*models.WordDefinition, error) {
	prompt := fmt.Sprintf(`Give a dictionary entry for the English word %q for a Spanish-speaking A1 learner.
Return a JSON object {"translation": the Spanish translation, "overview": one very simple English sentence explaining the word}.`, word)

	definition := &models.WordDefinition{}
	if err := c.generateJSON(ctx, prompt, definition); err != nil {
		return nil, fmt.Errorf("failed to look up word %q: %w", word, err)
	}
	return definition, nil
}

// ExtractLesson builds a lesson skeleton from the text of an uploaded
// document.
func (c *Client) ExtractLesson(ctx context.Context, documentText string) (*models.Lesson, error) {
	prompt := fmt.Sprintf(`Extract an A1 English lesson from this document:

%s

Return a JSON object {"title": a short lesson title in Spanish, "vocabulary": an array of 5-10 key English words from the document, "theme": one Spanish sentence describing the topic}.`, documentText)

	lesson := &models.Lesson{}
	if err := c.generateJSON(ctx, prompt, lesson); err != nil {
		return nil, fmt.Errorf("failed to extract lesson: %w", err)
	}
	lesson.IsCustom = true
	return lesson, nil
}
