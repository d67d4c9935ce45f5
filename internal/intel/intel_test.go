package intel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexiconShape(t *testing.T) {
	lex := Lexicon()
	require.NotEmpty(t, lex)

	languages := make(map[string]bool)
	for _, lang := range lex {
		assert.False(t, languages[lang.Language], "duplicate language %q", lang.Language)
		languages[lang.Language] = true

		names := make(map[string]bool)
		for _, cat := range lang.Categories {
			assert.False(t, names[cat.Name], "duplicate category %q in %q", cat.Name, lang.Language)
			names[cat.Name] = true

			assert.Greater(t, cat.Weight, 0, "category %q", cat.Name)
			assert.NotEmpty(t, cat.Keywords, "category %q", cat.Name)
		}
	}

	assert.True(t, languages["english"])
	assert.True(t, languages["hinglish"])
}

func TestKeywordsAreLowercase(t *testing.T) {
	// Matching runs against lowercased text, so an uppercased keyword can
	// never fire. The one historical exception is grandfathered in.
	exceptions := map[string]bool{
		"confirm your PAN": true,
	}

	for _, lang := range Lexicon() {
		for _, cat := range lang.Categories {
			for _, kw := range cat.Keywords {
				if exceptions[kw] {
					continue
				}
				assert.Equal(t, strings.ToLower(kw), kw,
					"keyword %q in %s/%s is not lowercase", kw, lang.Language, cat.Name)
			}
		}
	}
}

func TestCorpusLookup(t *testing.T) {
	assert.Greater(t, CorpusSize(), 200)

	assert.True(t, IsKnownSpam("paytm alert: we detected login from new device. confirm your account now"))
	assert.False(t, IsKnownSpam("a perfectly ordinary message"))

	// Lookup is exact equality, not substring.
	assert.False(t, IsKnownSpam("paytm alert: we detected login from new device"))
}

func TestDomainRegistry(t *testing.T) {
	assert.True(t, IsTrusted("google.com"))
	assert.True(t, IsTrusted("sbi.co.in"))
	assert.False(t, IsTrusted("google.com.evil.net"), "subdomain spoofing must not match")
	assert.False(t, IsTrusted("goog1e.com"))

	assert.True(t, IsBlacklisted("hdfcbank.security-access.net"))
	assert.True(t, IsBlacklisted("facebookmail.com"))
	assert.False(t, IsBlacklisted("facebook.com"))

	trusted, blacklisted := RegistrySize()
	assert.Equal(t, len(TrustedDomains()), trusted)
	assert.Greater(t, blacklisted, 50)
}

func TestNoDomainIsBothTrustedAndBlacklisted(t *testing.T) {
	for _, d := range TrustedDomains() {
		assert.False(t, IsBlacklisted(d), "domain %q is in both registries", d)
	}
}

func TestSuspiciousKeywordsAreLowercase(t *testing.T) {
	for _, kw := range SuspiciousDomainKeywords() {
		assert.Equal(t, strings.ToLower(kw), kw)
		assert.NotEmpty(t, kw)
	}
}

func TestEntityGroups(t *testing.T) {
	groups := EntityGroups()
	require.NotEmpty(t, groups)

	names := make(map[string]bool)
	for _, g := range groups {
		assert.False(t, names[g.Name], "duplicate group %q", g.Name)
		names[g.Name] = true
		assert.NotEmpty(t, g.Entities, "group %q", g.Name)
	}

	assert.True(t, names["bankNames"])
	assert.True(t, names["paymentServices"])
}
