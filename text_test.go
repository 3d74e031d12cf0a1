package foldz

import (
	"context"
	"testing"
)

func TestAnalyzeText(t *testing.T) {
	report := AnalyzeText(context.Background(), "Hello world.")

	if report.WordCount != 2 {
		t.Errorf("Expected 2 words, got %d", report.WordCount)
	}
	if report.SentenceCount != 1 {
		t.Errorf("Expected 1 sentence, got %d", report.SentenceCount)
	}
	if report.CharCount != 12 {
		t.Errorf("Expected 12 characters, got %d", report.CharCount)
	}
	if report.AvgWordLength != 5.0 {
		t.Errorf("Expected avg word length 5.0, got %f", report.AvgWordLength)
	}
}

func TestAnalyzeText_MultipleSentences(t *testing.T) {
	report := AnalyzeText(context.Background(), "Hello world. How are you?")

	if report.WordCount != 5 {
		t.Errorf("Expected 5 words, got %d", report.WordCount)
	}
	if report.SentenceCount != 2 {
		t.Errorf("Expected 2 sentences, got %d", report.SentenceCount)
	}
	if report.CharCount != 25 {
		t.Errorf("Expected 25 characters, got %d", report.CharCount)
	}
	if report.AvgWordLength != 3.8 {
		t.Errorf("Expected avg word length 3.8, got %f", report.AvgWordLength)
	}
}

func TestAnalyzeText_TrailingWordWithoutPunctuation(t *testing.T) {
	report := AnalyzeText(context.Background(), "no punctuation here")

	if report.WordCount != 3 {
		t.Errorf("Expected trailing word to count, got %d words", report.WordCount)
	}
	if report.SentenceCount != 0 {
		t.Errorf("Expected 0 sentences, got %d", report.SentenceCount)
	}
}

func TestAnalyzeText_NonLetterEndsWord(t *testing.T) {
	// Digits and hyphens end words just like whitespace does.
	report := AnalyzeText(context.Background(), "ab1cd-ef")

	if report.WordCount != 3 {
		t.Errorf("Expected 3 words, got %d", report.WordCount)
	}
}

func TestAnalyzeText_Empty(t *testing.T) {
	report := AnalyzeText(context.Background(), "")

	if report.WordCount != 0 || report.CharCount != 0 || report.SentenceCount != 0 || report.AvgWordLength != 0 {
		t.Errorf("Expected zero report for empty text, got %+v", report)
	}
}
