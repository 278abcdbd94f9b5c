package preference

import (
	"fmt"
	"strings"
)

// ExtractResult is what one utterance yields: the partial preference record,
// the bot reply text, and an optional navigation action.
type ExtractResult struct {
	Preference   Preference
	Confirmation string
	Action       *Action
}

// Extract maps one free-text utterance to a partial Preference plus a
// deterministic reply. It is pure and never fails: when no preference token
// matches it falls through to the intent table, and when that misses too it
// returns the generic help message.
//
// Within each field the policy is last-match-wins: of all vocabulary tokens
// present in the utterance, the one whose occurrence starts latest in
// left-to-right scan order is kept.
func Extract(utterance string) ExtractResult {
	lowered := strings.ToLower(utterance)

	var p Preference

	if place, ok := lastToken(lowered, Places); ok {
		p.Place = place
	}
	if cat, ok := lastToken(lowered, Categories); ok {
		p.Category = cat
	}

	bestIdx := -1
	for _, dp := range dayPatterns {
		if idx := strings.LastIndex(lowered, dp.phrase); idx > bestIdx {
			bestIdx = idx
			p.WorkDays = dp.canonical
		}
	}

	bestIdx = -1
	for _, dp := range dayParts {
		if idx := strings.LastIndex(lowered, dp.phrase); idx > bestIdx {
			bestIdx = idx
			p.StartTime = dp.start
			p.EndTime = dp.end
		}
	}

	// The wage keeps the first currency token, not the last; amounts later
	// in the sentence tend to be qualifiers ("교통비 3,000원 별도").
	if m := wageRe.FindStringSubmatch(lowered); m != nil {
		p.HourlyWage = parseWon(m[1])
	}

	if !p.IsEmpty() {
		return ExtractResult{Preference: p, Confirmation: confirmationText(p)}
	}

	if rule, ok := matchIntent(lowered); ok {
		return ExtractResult{Confirmation: rule.reply, Action: rule.action}
	}

	return ExtractResult{Confirmation: helpMessage}
}

// lastToken returns the vocabulary token whose last occurrence in s starts
// latest, implementing last-match-wins across the whole vocabulary.
func lastToken(s string, vocab []string) (string, bool) {
	best := ""
	bestIdx := -1
	for _, tok := range vocab {
		if idx := strings.LastIndex(s, strings.ToLower(tok)); idx > bestIdx {
			bestIdx = idx
			best = tok
		}
	}
	return best, bestIdx >= 0
}

func parseWon(s string) int {
	s = strings.ReplaceAll(s, ",", "")
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// confirmationText enumerates only the matched fields, one line each, in the
// fixed order: place, category, workDays, hourlyWage, time window.
func confirmationText(p Preference) string {
	b := strings.Builder{}
	b.WriteString("말씀하신 조건을 정리했어요.\n")
	if p.Place != "" {
		fmt.Fprintf(&b, "- 지역: %s\n", p.Place)
	}
	if p.Category != "" {
		fmt.Fprintf(&b, "- 직종: %s\n", p.Category)
	}
	if p.WorkDays != "" {
		fmt.Fprintf(&b, "- 근무일: %s\n", p.WorkDays)
	}
	if p.HourlyWage > 0 {
		fmt.Fprintf(&b, "- 시급: %s원\n", formatWon(p.HourlyWage))
	}
	if p.StartTime != "" && p.EndTime != "" {
		fmt.Fprintf(&b, "- 시간대: %s ~ %s\n", p.StartTime, p.EndTime)
	}
	b.WriteString("조건을 더 말씀해 주시거나, 일자리 찾기를 눌러주세요.")
	return b.String()
}

func formatWon(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
