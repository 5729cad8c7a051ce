package models

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"The Complete Guide to Building Wealth in Your 20s: A Decade-by-Decade Strategy",
			"the-complete-guide-to-building-wealth-in-your-20s-a-decade-by-decade-strategy"},
		{"  Leading & Trailing!  ", "leading-trailing"},
		{"Already-Slugged-Title", "already-slugged-title"},
	}

	for _, c := range cases {
		if got := Slugify(c.title); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}

func TestIsValidCategory(t *testing.T) {
	for _, category := range BlogCategories {
		if !IsValidCategory(category) {
			t.Errorf("expected %q to be valid", category)
		}
	}
	if IsValidCategory("Productivity") {
		t.Error("expected unknown category to be invalid")
	}
	if IsValidCategory("") {
		t.Error("expected empty category to be invalid")
	}
}
