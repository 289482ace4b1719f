package conformance

import "strings"

// Case is a single corpus entry: a stable name and its literal text.
type Case struct {
	// Name is the stable case identifier, shared by every implementation.
	Name string
	// Text is the ground-truth plaintext.
	Text string
}

// Corpus is an ordered list of conformance cases. Case names are stable
// identifiers and are never reused across unrelated content.
type Corpus []Case

// Text returns the ground-truth text for a case name.
func (c Corpus) Text(name string) (string, bool) {
	for _, entry := range c {
		if entry.Name == name {
			return entry.Text, true
		}
	}
	return "", false
}

// DefaultCorpus returns the fixed multi-lingual corpus shared verbatim
// by every implementation under test. The texts exercise empty input,
// whitespace, ZWJ emoji sequences, right-to-left scripts, combining
// marks, and the payload ceiling.
func DefaultCorpus() Corpus {
	return Corpus{
		{"empty", ""},
		{"single_char", "X"},
		{"whitespace", "   \t\n   "},
		{"numbers", "1234567890"},
		{"punctuation", "!@#$%^&*()_+-=[]{}\\|;':\",./<>?"},
		{"newlines", "Line 1\nLine 2\nLine 3"},
		{"emoji_simple", "Hello 👋 World 🌍"},
		{"emoji_zwj", "Family: 👨‍👩‍👧‍👦"},
		{"chinese", "你好世界 - Hello World"},
		{"arabic", "مرحبا بالعالم"},
		{"japanese", "こんにちは世界 カタカナ 漢字"},
		{"korean", "안녕하세요 세계"},
		{"accents", "Café résumé naïve"},
		{"cyrillic", "Привет мир"},
		{"json", `{"key": "value", "num": 42}`},
		{"html", `<div class="test">Content</div>`},
		{"url", "https://example.com/path?q=test&lang=en"},
		{"code", `func hello() { print("Hi") }`},
		{"long_text", strings.Repeat("The quick brown fox jumps over the lazy dog. ", 11)},
		{"max_payload", strings.Repeat("A", 882)},
	}
}
