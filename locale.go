package keyfile

import (
	"regexp"
	"strings"
	"sync"
)

// Component bits, least significant first. Variant ordering follows from
// counting the mask down, so the bit assignment is significant.
const (
	bitEncoding = 1 << iota
	bitTerritory
	bitModifier
)

// Locale is a POSIX-style locale tag: language[_TERRITORY][.encoding][@modifier].
// A Locale is immutable; its fallback variants are computed once.
type Locale struct {
	language  string
	territory string
	encoding  string
	modifier  string
	mask      int
	value     string

	once     sync.Once
	variants []string
	lookup   map[string]struct{}
}

// NewLocale builds a locale from its components. Empty strings mark
// absent components. The language is not validated; use ParseLocale for
// untrusted input.
func NewLocale(language, territory, encoding, modifier string) *Locale {
	l := &Locale{
		language:  language,
		territory: territory,
		encoding:  encoding,
		modifier:  modifier,
	}
	if encoding != "" {
		l.mask |= bitEncoding
	}
	if territory != "" {
		l.mask |= bitTerritory
	}
	if modifier != "" {
		l.mask |= bitModifier
	}
	l.value = l.format(l.mask)
	return l
}

// Language returns the language code. The other component accessors
// return "" for an absent component.
func (l *Locale) Language() string  { return l.language }
func (l *Locale) Territory() string { return l.territory }
func (l *Locale) Encoding() string  { return l.encoding }
func (l *Locale) Modifier() string  { return l.modifier }

// String returns the canonical form language[_territory][.encoding][@modifier].
func (l *Locale) String() string {
	return l.value
}

func (l *Locale) format(mask int) string {
	var b strings.Builder
	b.WriteString(l.language)
	if mask&bitTerritory != 0 {
		b.WriteByte('_')
		b.WriteString(l.territory)
	}
	if mask&bitEncoding != 0 {
		b.WriteByte('.')
		b.WriteString(l.encoding)
	}
	if mask&bitModifier != 0 {
		b.WriteByte('@')
		b.WriteString(l.modifier)
	}
	return b.String()
}

// Variants returns every combination of the present components, most
// specific first. For ll_CC.foo@bar:
//
//	ll_CC.foo@bar ll_CC@bar ll.foo@bar ll@bar ll_CC.foo ll_CC ll.foo ll
func (l *Locale) Variants() []string {
	l.once.Do(l.computeVariants)
	out := make([]string, len(l.variants))
	copy(out, l.variants)
	return out
}

func (l *Locale) computeVariants() {
	for i := l.mask; i >= 0; i-- {
		if i&^l.mask != 0 {
			continue
		}
		l.variants = append(l.variants, l.format(i))
	}
	l.lookup = make(map[string]struct{}, len(l.variants))
	for _, v := range l.variants {
		l.lookup[v] = struct{}{}
	}
}

// MatchesTag reports whether tag is this locale or one of its variants.
func (l *Locale) MatchesTag(tag string) bool {
	if tag == l.value {
		return true
	}
	l.once.Do(l.computeVariants)
	_, ok := l.lookup[tag]
	return ok
}

// Matches reports whether other is this locale or one of its variants.
func (l *Locale) Matches(other *Locale) bool {
	return other != nil && l.MatchesTag(other.value)
}

// Select returns the most specific variant present in candidates.
func (l *Locale) Select(candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	set := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		set[c] = struct{}{}
	}
	l.once.Do(l.computeVariants)
	for _, v := range l.variants {
		if _, ok := set[v]; ok {
			return v, true
		}
	}
	return "", false
}

// Subtags is what a Canonicalizer extracts from a locale identifier.
type Subtags struct {
	Language  string
	Territory string
	Script    string
}

// Canonicalizer maps a locale identifier the POSIX grammar rejects to
// its subtags. It reports false when it cannot make sense of the input.
type Canonicalizer func(text string) (Subtags, bool)

// LocaleParser parses locale identifiers. Canonicalize is consulted only
// after the built-in grammars fail; it may be nil.
type LocaleParser struct {
	Canonicalize Canonicalizer
}

var (
	posixLocaleRx  = regexp.MustCompile(`^([a-z]{2,3})(?:_([A-Z]{2}))?(?:\.([^@]+))?(?:@(.+))?$`)
	hyphenLocaleRx = regexp.MustCompile(`^([A-Za-z]{2,3})((?:-[A-Za-z0-9]+)+)(?:@(.+))?$`)
	languageRx     = regexp.MustCompile(`^[a-z]{2,3}$`)
)

// ParseLocale parses text with the BCP 47 canonicalizer as the last
// resort.
func ParseLocale(text string) (*Locale, error) {
	return LocaleParser{Canonicalize: CanonicalizeBCP47}.Parse(text)
}

// MustParseLocale is like ParseLocale but panics on error.
func MustParseLocale(text string) *Locale {
	l, err := ParseLocale(text)
	if err != nil {
		panic(err)
	}
	return l
}

// Parse tries, in order, the POSIX grammar ll[_CC][.encoding][@modifier],
// the hyphenated form (pt-BR, sr-Latn) and the canonicalizer. It fails
// with ErrInvalidLocale when none applies.
func (p LocaleParser) Parse(text string) (*Locale, error) {
	if m := posixLocaleRx.FindStringSubmatch(text); m != nil {
		return NewLocale(m[1], m[2], m[3], m[4]), nil
	}
	if l, ok := parseHyphenLocale(text); ok {
		return l, nil
	}
	if p.Canonicalize != nil {
		if sub, ok := p.Canonicalize(text); ok && languageRx.MatchString(sub.Language) {
			return NewLocale(sub.Language, sub.Territory, "", strings.ToLower(sub.Script)), nil
		}
	}
	return nil, invalid(ErrInvalidLocale, text)
}

// parseHyphenLocale handles tags such as fr-Latn-BE or fr-fr-latin: a
// two-letter segment is the territory, a 3-8 character segment the
// modifier.
func parseHyphenLocale(text string) (*Locale, bool) {
	m := hyphenLocaleRx.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	var territory string
	modifier := m[3]
	for _, seg := range strings.Split(m[2][1:], "-") {
		switch {
		case len(seg) == 2 && territory == "" && isAlpha(seg):
			territory = strings.ToUpper(seg)
		case len(seg) >= 3 && len(seg) <= 8 && modifier == "":
			modifier = strings.ToLower(seg)
		default:
			return nil, false
		}
	}
	return NewLocale(strings.ToLower(m[1]), territory, "", modifier), true
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

type localeMode uint8

const (
	modeNone localeMode = iota
	modeTag
	modeSuppress
)

// LocaleSpec is the optional locale argument of the document API.
//
//   - NoLocale: the base (untranslated) value; at parse time, keep every
//     translation.
//   - ForLocale(l): the translation for l; at parse time, keep only
//     translations matching l or one of its variants.
//   - SuppressLocales: the base value; at parse time, drop every
//     translation.
type LocaleSpec struct {
	mode   localeMode
	locale *Locale
}

var (
	NoLocale        = LocaleSpec{}
	SuppressLocales = LocaleSpec{mode: modeSuppress}
)

// ForLocale wraps l. A nil locale is NoLocale.
func ForLocale(l *Locale) LocaleSpec {
	if l == nil {
		return NoLocale
	}
	return LocaleSpec{mode: modeTag, locale: l}
}

// Locale returns the wrapped locale, if any.
func (s LocaleSpec) Locale() (*Locale, bool) {
	return s.locale, s.mode == modeTag
}

func (s LocaleSpec) Suppressed() bool {
	return s.mode == modeSuppress
}

// tag is the exact entry tag addressed by s; empty for the base entry.
func (s LocaleSpec) tag() string {
	if s.mode != modeTag {
		return ""
	}
	return s.locale.value
}

// keep is the parse-time filter for an entry tagged with tag.
func (s LocaleSpec) keep(tag string) bool {
	switch s.mode {
	case modeSuppress:
		return false
	case modeTag:
		return s.locale.MatchesTag(tag)
	}
	return true
}

func (s LocaleSpec) String() string {
	switch s.mode {
	case modeSuppress:
		return "(suppressed)"
	case modeTag:
		return s.locale.value
	}
	return "(none)"
}
