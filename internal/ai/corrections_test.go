package ai

import (
	"testing"

	"practicego/internal/models"
)

func TestParseCorrections(t *testing.T) {
	tests := []struct {
		name            string
		reply           string
		wantText        string
		wantCorrections []models.WordCorrection
	}{
		{
			name:     "no trailer",
			reply:    "Hello! What is your name? 😊",
			wantText: "Hello! What is your name? 😊",
		},
		{
			name:     "single correction",
			reply:    "That's great! We say \"I have a dog\". 😊\n<!-- CORRECTIONS: [{\"original\": \"has\", \"corrected\": \"have\"}] -->",
			wantText: "That's great! We say \"I have a dog\". 😊",
			wantCorrections: []models.WordCorrection{
				{Original: "has", Corrected: "have"},
			},
		},
		{
			name:     "multiple corrections",
			reply:    "Nice! My name is Kandy.\n<!-- CORRECTIONS: [{\"original\": \"are\", \"corrected\": \"is\"}, {\"original\": \"me\", \"corrected\": \"my\"}] -->",
			wantText: "Nice! My name is Kandy.",
			wantCorrections: []models.WordCorrection{
				{Original: "are", Corrected: "is"},
				{Original: "me", Corrected: "my"},
			},
		},
		{
			name:            "empty corrections array",
			reply:           "Good job!\n<!-- CORRECTIONS: [] -->",
			wantText:        "Good job!",
			wantCorrections: []models.WordCorrection{},
		},
		{
			name:     "malformed trailer dropped",
			reply:    "Good job!\n<!-- CORRECTIONS: [{\"original\": \"are\"] -->",
			wantText: "Good job!",
		},
		{
			name:     "trailer mid-text",
			reply:    "Well done! <!-- CORRECTIONS: [{\"original\": \"a\", \"corrected\": \"an\"}] --> Keep going!",
			wantText: "Well done!  Keep going!",
			wantCorrections: []models.WordCorrection{
				{Original: "a", Corrected: "an"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, corrections := ParseCorrections(tt.reply)
			if text != tt.wantText {
				t.Errorf("text = %q, want %q", text, tt.wantText)
			}
			if len(corrections) != len(tt.wantCorrections) {
				t.Fatalf("got %d corrections, want %d", len(corrections), len(tt.wantCorrections))
			}
			for i, c := range corrections {
				if c != tt.wantCorrections[i] {
					t.Errorf("corrections[%d] = %+v, want %+v", i, c, tt.wantCorrections[i])
				}
			}
		})
	}
}
