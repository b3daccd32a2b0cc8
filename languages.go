package tmcache

import "strings"

// LanguageNames maps lowercase ISO-639-1 codes to human-readable names
// used in AI prompts. Keys match the language tag embedded in cache keys.
var LanguageNames = map[string]string{
	"ar": "Arabic",
	"bg": "Bulgarian",
	"cs": "Czech",
	"da": "Danish",
	"de": "German",
	"el": "Greek",
	"en": "English",
	"es": "Spanish",
	"fa": "Persian",
	"fi": "Finnish",
	"fr": "French",
	"he": "Hebrew",
	"hi": "Hindi",
	"hr": "Croatian",
	"hu": "Hungarian",
	"id": "Indonesian",
	"it": "Italian",
	"ja": "Japanese",
	"ko": "Korean",
	"nl": "Dutch",
	"no": "Norwegian",
	"pl": "Polish",
	"pt": "Portuguese",
	"ro": "Romanian",
	"ru": "Russian",
	"sv": "Swedish",
	"th": "Thai",
	"tr": "Turkish",
	"uk": "Ukrainian",
	"vi": "Vietnamese",
	"zh": "Chinese",
}

// LanguageName returns the display name for a language code, accepting
// bare codes ("tr") as well as region-qualified tags ("pt-BR", "pt_BR").
// Unknown codes are returned as-is so prompts still carry something
// meaningful.
func LanguageName(code string) string {
	lower := strings.ToLower(code)
	if name, ok := LanguageNames[lower]; ok {
		return name
	}

	base := lower
	if i := strings.IndexAny(lower, "-_"); i > 0 {
		base = lower[:i]
	}
	if name, ok := LanguageNames[base]; ok {
		return name
	}

	return code
}
