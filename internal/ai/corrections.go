package ai

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"

	"practicego/internal/models"
)

// correctionsPattern matches the machine-readable trailer the chat
// system instruction asks the model to append, e.g.
// <!-- CORRECTIONS: [{"original": "are", "corrected": "is"}] -->
var correctionsPattern = regexp.MustCompile(`(?s)<!--\s*CORRECTIONS:\s*(\[.*?\])\s*-->`)

// ParseCorrections strips the corrections trailer from a chat reply and
// returns the clean conversational text plus the extracted corrections.
// A malformed trailer is dropped rather than surfaced to the user.
func ParseCorrections(reply string) (string, []models.WordCorrection) {
	match := correctionsPattern.FindStringSubmatchIndex(reply)
	if match == nil {
		return strings.TrimSpace(reply), nil
	}

	clean := strings.TrimSpace(reply[:match[0]] + reply[match[1]:])

	var corrections []models.WordCorrection
	if err := json.Unmarshal([]byte(reply[match[2]:match[3]]), &corrections); err != nil {
		log.Printf("Warning: dropping malformed corrections trailer: %v", err)
		return clean, nil
	}
	return clean, corrections
}
