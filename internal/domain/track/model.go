package track

// Features is optional audio metadata for a submitted track. Nil numeric
// fields mean the provider had no value.
type Features struct {
	ImageURL                string
	Tempo                   *float64
	TempoConfidence         *float64
	TimeSignature           *float64
	TimeSignatureConfidence *float64
	Danceability            *float64
	Energy                  *float64
	Valence                 *float64
	Loudness                *float64
	Genres                  []string
}

func (f Features) PrimaryGenre() string {
	if len(f.Genres) == 0 {
		return ""
	}
	return f.Genres[0]
}
