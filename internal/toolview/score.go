package toolview

// Level is the discrete severity band derived from a numeric score.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// BandColors is the color triple associated with a severity band.
type BandColors struct {
	Text       string
	Background string
	Border     string
}

// Band pairs a severity level with its colors.
type Band struct {
	Level  Level
	Colors BandColors
}

// scoreBands is the single banding policy shared by every component that
// shows a score: [0,40) low, [40,70) medium, [70,100] high. A given numeric
// value always yields the same label and colors no matter where it appears.
var scoreBands = []struct {
	floor float64
	band  Band
}{
	{70, Band{LevelHigh, BandColors{Text: "#1e8e3e", Background: "#e6f4ea", Border: "#a8dab5"}}},
	{40, Band{LevelMedium, BandColors{Text: "#b45309", Background: "#fef3c7", Border: "#fcd34d"}}},
	{0, Band{LevelLow, BandColors{Text: "#d93025", Background: "#fce8e6", Border: "#f5c6c0"}}},
}

// Classify maps a score to its severity band. It is total over the numeric
// domain: scores are clamped to [0,100], so values below the lowest band
// floor land in the low band and values above 100 land in the high band.
// Pure and idempotent.
func Classify(score float64) Band {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	for _, sb := range scoreBands {
		if score >= sb.floor {
			return sb.band
		}
	}
	// Unreachable after clamping; the zero floor always matches.
	return scoreBands[len(scoreBands)-1].band
}

// scoreAt resolves a schema's score field against the payload. An absent or
// non-numeric score reads as 0.
func scoreAt(data any, path string) float64 {
	if path == "" {
		return 0
	}
	v, ok := Resolve(data, path)
	if !ok {
		return 0
	}
	f, ok := toFloat(v)
	if !ok {
		return 0
	}
	return f
}
