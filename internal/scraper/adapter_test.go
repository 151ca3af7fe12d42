package scraper

import "testing"

func TestAbsoluteURL(t *testing.T) {
	pg, err := NewPage("https://example.com/catalog/page/2/", nil)
	if err != nil {
		t.Fatalf("NewPage: %v", err)
	}

	cases := []struct {
		raw  string
		want string
	}{
		{"https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"http://other.com/b.png", "http://other.com/b.png"},
		{"//cdn.example.com/c.webp", "https://cdn.example.com/c.webp"},
		{"/images/d.jpg", "https://example.com/images/d.jpg"},
		{"images/e.jpg", "https://example.com/images/e.jpg"},
		{"  /images/f.jpg  ", "https://example.com/images/f.jpg"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := pg.AbsoluteURL(tc.raw); got != tc.want {
			t.Errorf("AbsoluteURL(%q): expected %q, got %q", tc.raw, tc.want, got)
		}
	}
}

func TestAbsoluteURLIdempotent(t *testing.T) {
	pg, err := NewPage("https://example.com/catalog", nil)
	if err != nil {
		t.Fatalf("NewPage: %v", err)
	}
	once := pg.AbsoluteURL("/images/a.jpg")
	twice := pg.AbsoluteURL(once)
	if once != twice {
		t.Fatalf("not idempotent: %q vs %q", once, twice)
	}
}

func TestAbsoluteURLWithoutBase(t *testing.T) {
	var pg *Page
	if got := pg.AbsoluteURL("/images/a.jpg"); got != "" {
		t.Fatalf("expected empty string without base, got %q", got)
	}
	if got := pg.AbsoluteURL("https://cdn.example.com/a.jpg"); got != "https://cdn.example.com/a.jpg" {
		t.Fatalf("absolute URL should pass through, got %q", got)
	}
}
