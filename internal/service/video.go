package service

import "regexp"

var videoRequestPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bvideos?\b`),
	regexp.MustCompile(`(?i)\bdiy\b`),
	regexp.MustCompile(`(?i)\btutorials?\b`),
	regexp.MustCompile(`(?i)\bdemonstrat(e|ion|ing)\b`),
	regexp.MustCompile(`(?i)\bwalk me through\b`),
	regexp.MustCompile(`(?i)\bshow me how\b`),
	regexp.MustCompile(`(?i)\bhow (do|can|would|should) i (do|fix|replace|change|install|swap) (it|this|that|them)\b`),
}

// RequestsVideo reports whether the query explicitly asks for a demonstration.
func RequestsVideo(query string) bool {
	for _, p := range videoRequestPatterns {
		if p.MatchString(query) {
			return true
		}
	}
	return false
}
