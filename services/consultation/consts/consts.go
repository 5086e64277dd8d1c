package consts

const (
	// Summary generation
	SummarySystemPrompt = "You are a medical assistant. Summarize the following consultation notes concisely and professionally."
	SummaryMaxTokens    = 1024

	// Title constraints
	TitleMinLen = 3
	TitleMaxLen = 255

	// Audio formats
	FormatWAV = "wav"
	FormatMP3 = "mp3"
	FormatOGG = "ogg"
	FormatM4A = "m4a"

	// Whisper rejects uploads above 25MB
	MaxAudioSize = 25 * 1024 * 1024
)
