package gotrans

import (
	"sort"
	"strings"
)

// LanguageSet is an immutable set of language codes accepted by a provider.
// Membership is case-insensitive; the casing given to NewLanguageSet is kept
// as the canonical form sent on the wire.
type LanguageSet struct {
	codes map[string]string
}

// NewLanguageSet builds a set from codes. Empty codes are ignored.
func NewLanguageSet(codes ...string) LanguageSet {
	set := LanguageSet{codes: make(map[string]string, len(codes))}
	for _, code := range codes {
		if code == "" {
			continue
		}
		set.codes[strings.ToLower(code)] = code
	}
	return set
}

// Contains reports whether code is in the set, ignoring case.
func (s LanguageSet) Contains(code string) bool {
	_, ok := s.codes[strings.ToLower(code)]
	return ok
}

// Canonical returns the set's spelling of code, or code unchanged when it is
// not a member. AutoDetect in any casing becomes AutoDetect.
func (s LanguageSet) Canonical(code string) string {
	if strings.EqualFold(code, AutoDetect) {
		return AutoDetect
	}
	if c, ok := s.codes[strings.ToLower(code)]; ok {
		return c
	}
	return code
}

// Len returns the number of codes in the set.
func (s LanguageSet) Len() int {
	return len(s.codes)
}

// Codes returns the canonical codes in sorted order.
func (s LanguageSet) Codes() []string {
	codes := make([]string, 0, len(s.codes))
	for _, code := range s.codes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// AutoDetect is the source code asking a provider to detect the input language.
const AutoDetect = "auto"

// ValidatePair checks a source/target pair against a supported set. The source
// may be AutoDetect when allowAuto is set. The first offending code is reported.
func ValidatePair(provider string, set LanguageSet, source, target string, allowAuto bool) error {
	if !(allowAuto && strings.EqualFold(source, AutoDetect)) && !set.Contains(source) {
		return &UnsupportedLanguageError{Provider: provider, Code: source}
	}
	if !set.Contains(target) {
		return &UnsupportedLanguageError{Provider: provider, Code: target}
	}
	return nil
}

// LanguageNames maps locale codes to human-readable names for model prompts.
var LanguageNames = map[string]string{
	// Tier 1 (High Quality)
	"en_US": "English (United States)",
	"en_GB": "English (United Kingdom)",
	"de_DE": "German (Germany)",
	"es_ES": "Spanish (Spain)",
	"es_MX": "Spanish (Mexico)",
	"fr_FR": "French (France)",
	"it_IT": "Italian (Italy)",
	"ja_JP": "Japanese (Japan)",
	"pt_BR": "Portuguese (Brazil)",
	"pt_PT": "Portuguese (Portugal)",
	"zh_CN": "Chinese (Simplified)",
	"zh_TW": "Chinese (Traditional)",

	// Tier 2 (Good Quality)
	"ar_SA": "Arabic (Saudi Arabia)",
	"bn_BD": "Bengali (Bangladesh)",
	"cs_CZ": "Czech (Czech Republic)",
	"da_DK": "Danish (Denmark)",
	"el_GR": "Greek (Greece)",
	"fi_FI": "Finnish (Finland)",
	"he_IL": "Hebrew (Israel)",
	"hi_IN": "Hindi (India)",
	"hu_HU": "Hungarian (Hungary)",
	"id_ID": "Indonesian (Indonesia)",
	"ko_KR": "Korean (South Korea)",
	"nl_NL": "Dutch (Netherlands)",
	"nb_NO": "Norwegian Bokmål (Norway)",
	"pl_PL": "Polish (Poland)",
	"ro_RO": "Romanian (Romania)",
	"ru_RU": "Russian (Russia)",
	"sv_SE": "Swedish (Sweden)",
	"th_TH": "Thai (Thailand)",
	"tr_TR": "Turkish (Turkey)",
	"uk_UA": "Ukrainian (Ukraine)",
	"vi_VN": "Vietnamese (Vietnam)",

	// Tier 3 (Functional)
	"bg_BG": "Bulgarian (Bulgaria)",
	"ca_ES": "Catalan (Spain)",
	"fa_IR": "Persian (Iran)",
	"hr_HR": "Croatian (Croatia)",
	"lt_LT": "Lithuanian (Lithuania)",
	"lv_LV": "Latvian (Latvia)",
	"ms_MY": "Malay (Malaysia)",
	"sk_SK": "Slovak (Slovakia)",
	"sl_SI": "Slovenian (Slovenia)",
	"sr_RS": "Serbian (Serbia)",
	"sw_KE": "Swahili (Kenya)",
	"tl_PH": "Tagalog (Philippines)",
	"ur_PK": "Urdu (Pakistan)",
}

// ShortCodeToLocale maps short language codes to full locale codes.
var ShortCodeToLocale = map[string]string{
	"en": "en_US",
	"de": "de_DE",
	"es": "es_ES",
	"fr": "fr_FR",
	"it": "it_IT",
	"ja": "ja_JP",
	"pt": "pt_BR",
	"zh": "zh_CN",
	"ko": "ko_KR",
	"ru": "ru_RU",
	"ar": "ar_SA",
	"he": "he_IL",
	"hi": "hi_IN",
	"nl": "nl_NL",
	"pl": "pl_PL",
	"tr": "tr_TR",
	"vi": "vi_VN",
}

// GetLanguageName returns the human-readable name for a language code.
// Falls back to the code itself if not found.
func GetLanguageName(langCode string) string {
	langCode = NormalizeLocale(langCode)
	if name, ok := LanguageNames[langCode]; ok {
		return name
	}
	// Try expanding short code
	if locale, ok := ShortCodeToLocale[langCode]; ok {
		if name, ok := LanguageNames[locale]; ok {
			return name
		}
	}
	return langCode
}

// ModelLanguages is the set of codes accepted by model-backed providers:
// every locale in LanguageNames, its hyphenated form and the short codes.
func ModelLanguages() LanguageSet {
	var codes []string
	for locale := range LanguageNames {
		codes = append(codes, locale, ToBCP47(locale))
	}
	for short := range ShortCodeToLocale {
		codes = append(codes, short)
	}
	return NewLanguageSet(codes...)
}

// GetFormalityDescription returns the register instruction for a formality setting.
func GetFormalityDescription(f Formality) string {
	switch f {
	case FormalityFormal:
		return "Use formal, polite language and the formal form of address."
	case FormalityInformal:
		return "Use casual, conversational language and the informal form of address."
	default:
		return "Use a neutral register."
	}
}

// NormalizeLocale converts a language code to the standard format (e.g., "es-ES" → "es_ES").
func NormalizeLocale(langCode string) string {
	return strings.ReplaceAll(langCode, "-", "_")
}

// ToBCP47 converts a locale code to BCP 47 format (e.g., "es_ES" → "es-ES").
func ToBCP47(langCode string) string {
	return strings.ReplaceAll(langCode, "_", "-")
}
