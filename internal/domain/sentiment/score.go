package sentiment

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Score rates text in [-1, 1]. Empty or unrecognised text scores 0.
func Score(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0
	}

	sum := 0
	for idx, token := range tokens {
		weight, ok := lexicon[token]
		if !ok {
			continue
		}
		if idx > 0 {
			if _, negated := negators[tokens[idx-1]]; negated {
				weight = -weight
			}
		}
		sum += weight
	}

	return clamp(float64(sum) / 5)
}

// Color maps a score to the tint used for comment badges: red through yellow
// for negative text, yellow through green for positive text, and a neutral
// grey near zero.
func Color(score float64) string {
	score = clamp(score)
	switch {
	case score < -0.05:
		return hsl(60 * (1 + score))
	case score > 0.05:
		return hsl(60 + 60*score)
	default:
		return "hsl(0, 0%, 95%)"
	}
}

func hsl(hue float64) string {
	hue = math.Round(hue*100) / 100
	return "hsl(" + strconv.FormatFloat(hue, 'f', -1, 64) + ", 100%, 85%)"
}

func clamp(value float64) float64 {
	if value > 1 {
		return 1
	}
	if value < -1 {
		return -1
	}
	return value
}

var folder = cases.Fold()

func tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.Trim(folder.String(field), "'")
		if token != "" {
			out = append(out, token)
		}
	}
	return out
}
