package foldz

import (
	"context"
	"unicode"
)

// TextReport summarizes a piece of text: words, characters (runes),
// sentences, and the average word length rounded to one decimal place.
type TextReport struct {
	WordCount     int
	CharCount     int
	SentenceCount int
	AvgWordLength float64
}

// AnalyzeText computes a TextReport in a single rune-level pass. A word is
// a maximal run of letters; any non-letter ends the current word, and if
// that non-letter is one of '.', '!', '?' it also closes a sentence. A
// trailing word with no terminating punctuation still counts.
func AnalyzeText(ctx context.Context, text string) TextReport {
	chars := NewSum[int]("text.chars")
	words := NewSum[int]("text.words")
	sentences := NewSum[int]("text.sentences")
	letters := NewSum[int]("text.word.letters")

	wordLen := 0
	for _, r := range text {
		chars.Add(ctx, 1)

		if unicode.IsLetter(r) {
			wordLen++
			continue
		}

		if wordLen > 0 {
			words.Add(ctx, 1)
			letters.Add(ctx, wordLen)
			wordLen = 0
		}
		switch r {
		case '.', '!', '?':
			sentences.Add(ctx, 1)
		}
	}
	if wordLen > 0 {
		words.Add(ctx, 1)
		letters.Add(ctx, wordLen)
	}

	report := TextReport{
		WordCount:     words.Result(),
		CharCount:     chars.Result(),
		SentenceCount: sentences.Result(),
	}
	if report.WordCount > 0 {
		report.AvgWordLength = round(float64(letters.Result())/float64(report.WordCount), 1)
	}
	return report
}
