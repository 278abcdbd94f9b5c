package preference

import "regexp"

// Fixed vocabularies the extractor matches against. Matching is
// case-insensitive and purely substring based; there is no ranking or
// disambiguation beyond last-match-wins scan order.

var Places = []string{
	"강남", "서초", "송파", "강동", "관악", "마포", "영등포", "종로",
	"중구", "용산", "성동", "광진", "동대문", "노원", "은평", "강서",
	"구로", "금천", "동작", "서대문", "성북", "중랑", "도봉", "강북",
	"양천",
}

var Categories = []string{
	"서빙", "주방", "조리", "청소", "미화", "경비", "배달", "운전",
	"사무", "매장관리", "판매", "돌봄", "요양", "농장", "포장", "경리",
}

// dayPattern maps a matched phrase to the canonical work-day value.
type dayPattern struct {
	phrase    string
	canonical string
}

var dayPatterns = []dayPattern{
	{"주 5일", "주 5일"},
	{"주5일", "주 5일"},
	{"주 6일", "주 6일"},
	{"주6일", "주 6일"},
	{"주말", "주말"},
}

// dayPart maps a day-part cue to a linked start/end time bucket.
type dayPart struct {
	phrase string
	start  string
	end    string
}

var dayParts = []dayPart{
	{"오전", "09:00", "12:00"},
	{"아침", "09:00", "12:00"},
	{"오후", "12:00", "18:00"},
	{"점심", "12:00", "18:00"},
	{"저녁", "18:00", "22:00"},
	{"야간", "18:00", "22:00"},
}

// wageRe matches the first currency-like token, e.g. "15,000원" or "9860원".
var wageRe = regexp.MustCompile(`(\d{1,3}(?:,\d{3})+|\d+)원`)
