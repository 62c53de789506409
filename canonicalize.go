package keyfile

import (
	"strings"

	"golang.org/x/text/language"
)

// CanonicalizeBCP47 reads text as a BCP 47 tag. Only subtags present in
// the input are reported; inferred regions and scripts are ignored.
func CanonicalizeBCP47(text string) (Subtags, bool) {
	tag, err := language.Parse(text)
	if err != nil {
		return Subtags{}, false
	}
	base, conf := tag.Base()
	if conf != language.Exact || base.String() == "und" {
		return Subtags{}, false
	}
	sub := Subtags{Language: base.String()}
	if region, conf := tag.Region(); conf == language.Exact && len(region.String()) == 2 {
		sub.Territory = region.String()
	}
	if script, conf := tag.Script(); conf == language.Exact {
		sub.Script = strings.ToLower(script.String())
	}
	return sub, true
}
