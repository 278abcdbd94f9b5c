package preference

import "strings"

// intentRule is one entry of the keyword fallback table consulted when an
// utterance carries no preference token. Rules are evaluated in slice order
// and the first rule with any keyword hit wins, so priority is explicit here
// rather than implied by scattered source statements.
type intentRule struct {
	name     string
	keywords []string
	reply    string
	action   *Action
}

var intentRules = []intentRule{
	{
		name:     "greeting",
		keywords: []string{"안녕", "hello", "hi", "반가"},
		reply:    "안녕하세요! 원하시는 근무 지역, 직종, 시급을 말씀해 주시면 맞는 일자리를 찾아드려요.",
	},
	{
		name:     "recommend",
		keywords: []string{"추천", "맞는 일", "어떤 일"},
		reply:    "지금까지 말씀해 주신 조건으로 일자리를 추천해 드릴게요.",
		action:   &Action{Label: "맞춤 일자리 보기", Path: "/jobs"},
	},
	{
		name:     "profile",
		keywords: []string{"프로필", "이력서", "경력"},
		reply:    "프로필 페이지에서 경력과 자격증을 관리하실 수 있어요.",
		action:   &Action{Label: "프로필 관리", Path: "/profile"},
	},
	{
		name:     "search",
		keywords: []string{"검색", "일자리", "채용", "구인"},
		reply:    "일자리 검색 페이지로 이동해서 조건에 맞는 공고를 확인해 보세요.",
		action:   &Action{Label: "일자리 검색", Path: "/jobs/search"},
	},
	{
		name:     "thanks",
		keywords: []string{"고마워", "감사"},
		reply:    "도움이 되었다니 다행이에요. 더 궁금한 점이 있으면 말씀해 주세요.",
	},
}

const helpMessage = "원하시는 조건을 말씀해 주세요. 예: \"강남에서 주 5일 시급 15,000원 서빙 일자리 찾아줘\""

func matchIntent(lowered string) (intentRule, bool) {
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule, true
			}
		}
	}
	return intentRule{}, false
}
