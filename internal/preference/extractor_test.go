package preference

import (
	"strings"
	"testing"
)

func TestExtract_SinglePlaceToken(t *testing.T) {
	res := Extract("강남 근처에서 일하고 싶어요")
	if res.Preference.Place != "강남" {
		t.Fatalf("expected place 강남, got %q", res.Preference.Place)
	}
	if !strings.Contains(res.Confirmation, "- 지역: 강남") {
		t.Fatalf("confirmation missing place line: %q", res.Confirmation)
	}
}

func TestExtract_LastPlaceWins(t *testing.T) {
	res := Extract("서초 말고 강남에서 일하고 싶어요")
	if res.Preference.Place != "강남" {
		t.Fatalf("expected later place 강남 to win, got %q", res.Preference.Place)
	}

	res = Extract("강남 말고 서초에서 일하고 싶어요")
	if res.Preference.Place != "서초" {
		t.Fatalf("expected later place 서초 to win, got %q", res.Preference.Place)
	}
}

func TestExtract_FullUtterance(t *testing.T) {
	res := Extract("강남에서 주 5일 시급 15,000원 서빙")

	p := res.Preference
	if p.Place != "강남" {
		t.Errorf("place = %q, want 강남", p.Place)
	}
	if p.WorkDays != "주 5일" {
		t.Errorf("workDays = %q, want 주 5일", p.WorkDays)
	}
	if p.HourlyWage != 15000 {
		t.Errorf("hourlyWage = %d, want 15000", p.HourlyWage)
	}
	if p.Category != "서빙" {
		t.Errorf("category = %q, want 서빙", p.Category)
	}
	if p.StartTime != "" || p.EndTime != "" {
		t.Errorf("time window should be unset, got %q~%q", p.StartTime, p.EndTime)
	}
}

func TestExtract_ConfirmationFieldOrder(t *testing.T) {
	res := Extract("저녁에 강남에서 서빙 주말 시급 12,000원")

	lines := []string{"- 지역:", "- 직종:", "- 근무일:", "- 시급:", "- 시간대:"}
	last := -1
	for _, prefix := range lines {
		idx := strings.Index(res.Confirmation, prefix)
		if idx < 0 {
			t.Fatalf("confirmation missing %q: %q", prefix, res.Confirmation)
		}
		if idx < last {
			t.Fatalf("confirmation line %q out of order: %q", prefix, res.Confirmation)
		}
		last = idx
	}
}

func TestExtract_ConfirmationOnlyMatchedFields(t *testing.T) {
	res := Extract("주말에 일할래요")
	if res.Preference.WorkDays != "주말" {
		t.Fatalf("workDays = %q, want 주말", res.Preference.WorkDays)
	}
	for _, absent := range []string{"- 지역:", "- 직종:", "- 시급:", "- 시간대:"} {
		if strings.Contains(res.Confirmation, absent) {
			t.Errorf("confirmation should not contain %q: %q", absent, res.Confirmation)
		}
	}
}

func TestExtract_CompactDayPatternNormalized(t *testing.T) {
	res := Extract("주5일 근무 원해요")
	if res.Preference.WorkDays != "주 5일" {
		t.Fatalf("workDays = %q, want canonical 주 5일", res.Preference.WorkDays)
	}
}

func TestExtract_DayPartSetsLinkedPair(t *testing.T) {
	res := Extract("오전에 일하고 싶어요")
	if res.Preference.StartTime != "09:00" || res.Preference.EndTime != "12:00" {
		t.Fatalf("expected 09:00~12:00, got %q~%q", res.Preference.StartTime, res.Preference.EndTime)
	}
}

func TestExtract_LaterDayPartWins(t *testing.T) {
	res := Extract("오전보다는 저녁이 좋아요")
	if res.Preference.StartTime != "18:00" || res.Preference.EndTime != "22:00" {
		t.Fatalf("expected later bucket 18:00~22:00, got %q~%q", res.Preference.StartTime, res.Preference.EndTime)
	}
}

func TestExtract_WageKeepsFirstToken(t *testing.T) {
	res := Extract("시급 11,000원이고 교통비 3,000원 별도")
	if res.Preference.HourlyWage != 11000 {
		t.Fatalf("hourlyWage = %d, want first token 11000", res.Preference.HourlyWage)
	}
}

func TestExtract_EmptyInputFallsThroughToHelp(t *testing.T) {
	res := Extract("")
	if !res.Preference.IsEmpty() {
		t.Fatalf("empty input populated fields: %+v", res.Preference)
	}
	if res.Confirmation != helpMessage {
		t.Fatalf("expected generic help message, got %q", res.Confirmation)
	}
	if res.Action != nil {
		t.Fatalf("expected no action, got %+v", res.Action)
	}
}

func TestExtract_ManualFieldsNeverPopulated(t *testing.T) {
	res := Extract("강남에서 남자 60세 이상 서빙 주 5일")
	p := res.Preference
	if p.Gender != "" || p.Age != "" || p.Requirements != "" {
		t.Fatalf("manual-only fields populated: %+v", p)
	}
}

func TestMerge_FieldLevelOverwrite(t *testing.T) {
	base := Preference{Place: "서초", Category: "주방", HourlyWage: 10000}
	partial := Preference{Place: "강남", StartTime: "09:00", EndTime: "12:00"}

	got := Merge(base, partial)
	if got.Place != "강남" {
		t.Errorf("place = %q, want overwritten 강남", got.Place)
	}
	if got.Category != "주방" {
		t.Errorf("category = %q, want untouched 주방", got.Category)
	}
	if got.HourlyWage != 10000 {
		t.Errorf("hourlyWage = %d, want untouched 10000", got.HourlyWage)
	}
	if got.StartTime != "09:00" || got.EndTime != "12:00" {
		t.Errorf("time window = %q~%q, want 09:00~12:00", got.StartTime, got.EndTime)
	}
}

func TestMerge_PartialTimeIgnored(t *testing.T) {
	got := Merge(Preference{}, Preference{StartTime: "09:00"})
	if got.StartTime != "" || got.EndTime != "" {
		t.Fatalf("unpaired time should not merge, got %q~%q", got.StartTime, got.EndTime)
	}
}
