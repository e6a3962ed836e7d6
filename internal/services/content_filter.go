package services

import (
	"regexp"
	"strings"
)

var defaultBlockedWords = []string{
	"fuck", "shit", "bitch", "asshole", "cunt",
	"puta", "pendejo", "cabrón", "mierda", "verga",
}

// ContentFilter rejects user-written text (rating comments) that contains
// blocked words. Only whole words match. It is safe for concurrent use once
// built.
type ContentFilter struct {
	blocked []*regexp.Regexp
}

func NewContentFilter(words ...string) *ContentFilter {
	if len(words) == 0 {
		words = defaultBlockedWords
	}
	f := &ContentFilter{blocked: make([]*regexp.Regexp, 0, len(words))}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		f.blocked = append(f.blocked, regexp.MustCompile(`(?i)(^|[^\p{L}])`+regexp.QuoteMeta(w)+`($|[^\p{L}])`))
	}
	return f
}

// Check returns a ValidationError on field when text contains a blocked word.
func (f *ContentFilter) Check(field, text string) error {
	for _, re := range f.blocked {
		if re.MatchString(text) {
			return invalid(field, "contains inappropriate language")
		}
	}
	return nil
}
