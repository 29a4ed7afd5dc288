// Package language holds the supported-language registry and the text
// normalization used to deduplicate translations.
package language

import "strings"

// Supported maps language identifiers to display names. English is handled
// separately because it is the default source language, not a learnable one.
var Supported = map[string]string{
	"indonesian": "Indonesian",
	"vietnamese": "Vietnamese",
	"french":     "French",
	"spanish":    "Spanish",
	"portuguese": "Portuguese",
	"italian":    "Italian",
	"german":     "German",
	"dutch":      "Dutch",
	"swedish":    "Swedish",
	"norwegian":  "Norwegian",
	"danish":     "Danish",
	"finnish":    "Finnish",
	"russian":    "Russian",
	"polish":     "Polish",
	"czech":      "Czech",
	"hungarian":  "Hungarian",
	"romanian":   "Romanian",
	"bulgarian":  "Bulgarian",
	"japanese":   "Japanese",
	"korean":     "Korean",
	"chinese":    "Chinese (Mandarin)",
	"thai":       "Thai",
	"hindi":      "Hindi",
	"arabic":     "Arabic",
	"hebrew":     "Hebrew",
	"turkish":    "Turkish",
	"greek":      "Greek",
	"ukrainian":  "Ukrainian",
	"croatian":   "Croatian",
	"serbian":    "Serbian",
}

func IsValid(code string) bool {
	if code == "english" {
		return true
	}
	_, ok := Supported[code]
	return ok
}

func Name(code string) string {
	if code == "english" {
		return "English"
	}
	if name, ok := Supported[code]; ok {
		return name
	}
	if code == "" {
		return ""
	}
	r := []rune(code)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// Normalize lowercases, trims, and collapses internal whitespace so that
// " Hello   World " and "hello world" share one cache entry. Unicode-aware:
// strings.ToLower and strings.Fields both operate on runes.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
