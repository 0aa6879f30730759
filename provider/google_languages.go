package provider

import "github.com/ZaguanLabs/gotrans"

// GoogleLanguagesVersion identifies the snapshot of googleLanguageCodes.
// The web endpoint publishes no language list, so the table is maintained by hand.
// Legacy aliases (iw, jw) are listed next to their current codes (he, jv).
const GoogleLanguagesVersion = "2024-06"

var googleLanguageCodes = []string{
	"af", "ak", "am", "ar", "as", "ay", "az", "be", "bg", "bho", "bm", "bn", "bs", "ca",
	"ceb", "ckb", "co", "cs", "cy", "da", "de", "doi", "dv", "ee", "el", "en", "eo", "es",
	"et", "eu", "fa", "fi", "fr", "fy", "ga", "gd", "gl", "gn", "gom", "gu", "ha", "haw",
	"he", "hi", "hmn", "hr", "ht", "hu", "hy", "id", "ig", "ilo", "is", "it", "iw", "ja", "jv", "jw",
	"ka", "kk", "km", "kn", "ko", "kri", "ku", "ky", "la", "lb", "lg", "ln", "lo", "lt",
	"lus", "lv", "mai", "mg", "mi", "mk", "ml", "mn", "mni-Mtei", "mr", "ms", "mt", "my",
	"ne", "nl", "no", "nso", "ny", "om", "or", "pa", "pl", "ps", "pt", "qu", "ro", "ru",
	"rw", "sa", "sd", "si", "sk", "sl", "sm", "sn", "so", "sq", "sr", "st", "su", "sv",
	"sw", "ta", "te", "tg", "th", "ti", "tk", "tl", "tr", "ts", "tt", "ug", "uk", "ur",
	"uz", "vi", "xh", "yi", "yo", "zh", "zh-CN", "zh-TW", "zu",
}

// GoogleLanguages returns the codes accepted by the web translate endpoint.
func GoogleLanguages() gotrans.LanguageSet {
	return gotrans.NewLanguageSet(googleLanguageCodes...)
}
