package links

import "testing"

func TestNormalizeURL(t *testing.T) {
	cases := map[string]string{
		"example.com":          "https://example.com",
		"  example.com/path  ": "https://example.com/path",
		"https://example.com":  "https://example.com",
		"http://example.com":   "http://example.com",
		"HTTPS://Example.com":  "HTTPS://Example.com",
		"ftp.example.com":      "https://ftp.example.com",
		"localhost:3000/dash":  "https://localhost:3000/dash",
		"":                     "",
	}
	for in, want := range cases {
		if got := NormalizeURL(in); got != want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewLink_Missing(t *testing.T) {
	if m := (NewLink{Label: "Go", URL: "go.dev"}).Missing(); len(m) != 0 {
		t.Fatalf("expected nothing missing, got %v", m)
	}
	m := (NewLink{Label: "  ", URL: ""}).Missing()
	if len(m) != 2 || m[0] != "label" || m[1] != "link" {
		t.Fatalf("expected label and link missing, got %v", m)
	}
}
