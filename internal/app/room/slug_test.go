package room

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var canonicalSlug = regexp.MustCompile(`^[a-z0-9]*(-[a-z0-9]+)*$`)

func Test_Normalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"vendor prefix and punctuation", "vpaas-magic-cookie-ab12cd-My Room!!", "my-room"},
		{"last path segment", "path/to/Some Room", "some-room"},
		{"trailing slashes are skipped", "rooms/Evening Prayer//", "evening-prayer"},
		{"prefix inside a path", "https://8x8.vc/vpaas-magic-cookie-0f9e/Bible Study", "bible-study"},
		{"prefix is case-insensitive", "VPAAS-MAGIC-COOKIE-ABC123-Choir", "choir"},
		{"prefix without trailing hyphen", "vpaas-magic-cookie-abc123", ""},
		{"sermon title", "Unto Us A Son Is Given", "unto-us-a-son-is-given"},
		{"runs collapse to a single hyphen", "John 3:16 -- For God So Loved", "john-3-16-for-god-so-loved"},
		{"leading and trailing separators are trimmed", "  ***Psalm 23***  ", "psalm-23"},
		{"non-ASCII letters are separators", "Café Worship", "caf-worship"},
		{"already canonical", "sunday-service-2024", "sunday-service-2024"},
		{"empty", "", ""},
		{"only separators", "/// !!! ///", ""},
		{"prefix exposed after collapsing", "vpaas_magic_cookie_ab_Youth Night", "youth-night"},
		{"repeated prefixes", "vpaas-magic-cookie-a-vpaas-magic-cookie-b-Vespers", "vespers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, canonicalSlug, got)
			assert.Equal(t, got, Normalize(got))
		})
	}
}

func Test_lastPathSegment(t *testing.T) {
	assert.Equal(t, "no slash", lastPathSegment("no slash"))
	assert.Equal(t, "c", lastPathSegment("a/b/c"))
	assert.Equal(t, "b", lastPathSegment("/a/b/"))
	assert.Equal(t, "", lastPathSegment("///"))
}

func FuzzNormalize(f *testing.F) {
	for _, seed := range []string{
		"vpaas-magic-cookie-ab12cd-My Room!!",
		"path/to/Some Room",
		"vpaas_magic_cookie_ab_room",
		"---",
		"Ünïcødé / ルーム",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, raw string) {
		got := Normalize(raw)
		if !canonicalSlug.MatchString(got) {
			t.Fatalf("Normalize(%q) = %q is not canonical", raw, got)
		}
		if again := Normalize(got); again != got {
			t.Fatalf("Normalize is not idempotent: %q -> %q -> %q", raw, got, again)
		}
	})
}
