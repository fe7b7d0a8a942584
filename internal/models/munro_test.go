package models

import "testing"

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"MUN", CategoryMunro, true},
		{"TOP", CategoryTop, true},
		{"mun", "", false}, // markers are case-sensitive
		{"Top", "", false},
		{"BOTH", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseCategory(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseCategory(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseSortDirection(t *testing.T) {
	cases := []struct {
		in   string
		want SortDirection
	}{
		{"asc", SortAsc},
		{"ASC", SortAsc},
		{"Desc", SortDesc},
		{"desc", SortDesc},
		{"descending", SortNone},
		{"", SortNone},
	}
	for _, tc := range cases {
		if got := ParseSortDirection(tc.in); got != tc.want {
			t.Errorf("ParseSortDirection(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestClassified(t *testing.T) {
	if (Munro{Post1997: "MUN"}).Classified() != true {
		t.Error("MUN row should be classified")
	}
	if (Munro{Post1997: "TOP"}).Classified() != true {
		t.Error("TOP row should be classified")
	}
	if (Munro{Post1997: ""}).Classified() {
		t.Error("empty marker means the hill lost its status")
	}
}

func TestMatchesCategory(t *testing.T) {
	m := Munro{Post1997: "TOP"}
	if !m.MatchesCategory(CategoryTop) {
		t.Error("TOP row should match CategoryTop")
	}
	if m.MatchesCategory(CategoryMunro) {
		t.Error("TOP row should not match CategoryMunro")
	}
}
