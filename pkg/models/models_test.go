package models

import (
	"reflect"
	"testing"
)

func TestNewDrawRecord(t *testing.T) {
	raw := RawDraw{
		"code":        "2024058",
		"date":        "2024-05-23(四)",
		"red":         "02,08,14,21,27,33",
		"blue":        "09",
		"sales":       "358,936,310",
		"poolmoney":   "2,147,483,648",
		"content":     "一等奖5注，每注奖金8,353,228元",
		"detailsLink": "/ygkj/detail/2024058",
	}

	rec := NewDrawRecord(raw)

	if rec.Issue != "2024058" {
		t.Errorf("Issue = %q, want %q", rec.Issue, "2024058")
	}
	if rec.DrawDate != "2024-05-23(四)" {
		t.Errorf("DrawDate = %q", rec.DrawDate)
	}
	wantRed := []string{"02", "08", "14", "21", "27", "33"}
	if !reflect.DeepEqual(rec.RedNumbers, wantRed) {
		t.Errorf("RedNumbers = %v, want %v", rec.RedNumbers, wantRed)
	}
	if !reflect.DeepEqual(rec.BlueNumbers, []string{"09"}) {
		t.Errorf("BlueNumbers = %v", rec.BlueNumbers)
	}
	if rec.DetailsLink != "https://www.cwl.gov.cn/ygkj/detail/2024058" {
		t.Errorf("DetailsLink = %q", rec.DetailsLink)
	}
}

func TestNewDrawRecord_FallbackKeys(t *testing.T) {
	raw := RawDraw{
		"issue":     "2023112",
		"drawDate":  "2023-09-24",
		"redStr":    "01,02,03,04,05,06",
		"blueStr":   "16",
		"saleMoney": "300000000",
		"poolMoney": "1000000",
	}

	rec := NewDrawRecord(raw)

	if rec.Issue != "2023112" {
		t.Errorf("Issue = %q, want fallback key value", rec.Issue)
	}
	if rec.DrawDate != "2023-09-24" {
		t.Errorf("DrawDate = %q", rec.DrawDate)
	}
	if len(rec.RedNumbers) != 6 || rec.RedNumbers[0] != "01" {
		t.Errorf("RedNumbers = %v", rec.RedNumbers)
	}
	if rec.Sales != "300000000" || rec.PoolMoney != "1000000" {
		t.Errorf("Sales = %q, PoolMoney = %q", rec.Sales, rec.PoolMoney)
	}
}

func TestNewDrawRecord_PrimaryKeyWinsOverFallback(t *testing.T) {
	raw := RawDraw{"code": "2024001", "issue": "other"}
	if rec := NewDrawRecord(raw); rec.Issue != "2024001" {
		t.Errorf("Issue = %q, want primary key value", rec.Issue)
	}

	// An empty primary value falls through to the next candidate.
	raw = RawDraw{"code": "", "issue": "2024002"}
	if rec := NewDrawRecord(raw); rec.Issue != "2024002" {
		t.Errorf("Issue = %q, want fallback past empty primary", rec.Issue)
	}
}

func TestNewDrawRecord_NumericIssue(t *testing.T) {
	// JSON numbers decode as float64; they must render without exponent.
	raw := RawDraw{"code": float64(2024058)}
	if rec := NewDrawRecord(raw); rec.Issue != "2024058" {
		t.Errorf("Issue = %q, want %q", rec.Issue, "2024058")
	}
}

func TestNewDrawRecord_MissingFieldsDefaultEmpty(t *testing.T) {
	rec := NewDrawRecord(RawDraw{})
	if rec.Issue != "" || rec.Sales != "" || rec.DetailsLink != "" {
		t.Errorf("expected empty defaults, got %+v", rec)
	}
	if rec.RedNumbers != nil || rec.BlueNumbers != nil {
		t.Errorf("expected nil number slices, got %v / %v", rec.RedNumbers, rec.BlueNumbers)
	}
}

func TestSplitNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"clean", "1,2,3", []string{"1", "2", "3"}},
		{"messy whitespace", "1, 2,3 ,4", []string{"1", "2", "3", "4"}},
		{"empty tokens", "1,,2,", []string{"1", "2"}},
		{"only separators", ", ,", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitNumbers(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitNumbers(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveLink(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"relative", "/ygkj/detail/123", "https://www.cwl.gov.cn/ygkj/detail/123"},
		{"absolute https", "https://example.com/x", "https://example.com/x"},
		{"absolute http", "http://example.com/x", "http://example.com/x"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveLink(tt.in); got != tt.want {
				t.Errorf("ResolveLink(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
