package model

// Language is the set of languages content can be authored or served in.
type Language string

const (
	English Language = "english"
	Hindi   Language = "hindi"
	Bengali Language = "bengali"
	Tamil   Language = "tamil"
	Telugu  Language = "telugu"
	Marathi Language = "marathi"

	LanguageUnknown Language = "unknown"
)

// ParseLanguage maps arbitrary input to a known language, falling back to
// english so a bad form value never poisons a user row.
func ParseLanguage(s string) Language {
	switch Language(s) {
	case English, Hindi, Bengali, Tamil, Telugu, Marathi:
		return Language(s)
	}
	return English
}

type LearningStyle string

const (
	Visual      LearningStyle = "visual"
	Auditory    LearningStyle = "auditory"
	Kinesthetic LearningStyle = "kinesthetic"

	StyleUnknown LearningStyle = "unknown"
)

type EmotionalState string

const (
	Engaged    EmotionalState = "engaged"
	Confused   EmotionalState = "confused"
	Disengaged EmotionalState = "disengaged"
	Frustrated EmotionalState = "frustrated"
	Happy      EmotionalState = "happy"
	Neutral    EmotionalState = "neutral"

	EmotionUnknown EmotionalState = "unknown"
)

// ParseEmotion normalizes detector output to a known emotional state.
func ParseEmotion(s string) EmotionalState {
	switch EmotionalState(s) {
	case Engaged, Confused, Disengaged, Frustrated, Happy, Neutral:
		return EmotionalState(s)
	}
	return EmotionUnknown
}
