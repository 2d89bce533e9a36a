// Package columns matches free-text form headers to logical survey fields.
package columns

import (
	"strconv"
	"strings"

	"github.com/kalij01/ecobank-report-codes/internal/models"
)

// cardToken marks the multi-select card question. It is matched on its own,
// before any keyword rule.
const cardToken = "card"

// Rule is the keyword predicate for one field.
type Rule struct {
	Field    models.Field
	Keywords []string
}

// Rules is the keyword table applied by Resolve, in resolution order.
var Rules = []Rule{
	{Field: models.FieldTimestamp, Keywords: []string{"timestamp"}},
	{Field: models.FieldFullName, Keywords: []string{"full", "name"}},
	{Field: models.FieldProgramme, Keywords: []string{"programme"}},
	{Field: models.FieldYear, Keywords: []string{"year"}},
	{Field: models.FieldEmail, Keywords: []string{"email"}},
	{Field: models.FieldContact, Keywords: []string{"contact"}},
	{Field: models.FieldHasAccount, Keywords: []string{"bank", "account"}},
	{Field: models.FieldWantsEcobank, Keywords: []string{"open", "ecobank"}},
	{Field: models.FieldCardPreference, Keywords: []string{cardToken}},
}

// Keywords returns the keywords used to find f.
func Keywords(f models.Field) []string {
	for _, r := range Rules {
		if r.Field == f {
			return r.Keywords
		}
	}
	return nil
}

// Match returns the first header whose lowercased text contains every
// keyword. Keywords are lowercased before comparison.
func Match(headers []string, keywords ...string) (string, bool) {
	i := matchIndex(headers, keywords)
	if i < 0 {
		return "", false
	}
	return headers[i], true
}

// FirstContaining returns the first header containing token, ignoring case.
func FirstContaining(headers []string, token string) (string, bool) {
	return Match(headers, token)
}

func matchIndex(headers []string, keywords []string) int {
	keyset := make([]string, len(keywords))
	for i, k := range keywords {
		keyset[i] = strings.ToLower(k)
	}
	for i, h := range headers {
		lh := strings.ToLower(h)
		if containsAll(lh, keyset) {
			return i
		}
	}
	return -1
}

func containsAll(s string, keys []string) bool {
	for _, k := range keys {
		if !strings.Contains(s, k) {
			return false
		}
	}
	return true
}

// Resolve binds every field in Rules to the first matching header.
// Unmatched fields are left out of the result.
func Resolve(headers []string) models.Resolution {
	res := make(models.Resolution, len(Rules))
	for _, r := range Rules {
		var i int
		if r.Field == models.FieldCardPreference {
			i = matchIndex(headers, []string{cardToken})
		} else {
			i = matchIndex(headers, r.Keywords)
		}
		if i < 0 {
			continue
		}
		res[r.Field] = models.Column{Index: i, Header: headers[i]}
	}
	return res
}

// DecodeHeader returns a header row in which every resolved column carries
// its field key and every other column a unique placeholder. Columns shared
// by two fields carry the key of the first one.
func DecodeHeader(headers []string, res models.Resolution) []string {
	out := make([]string, len(headers))
	for i := range headers {
		out[i] = "column_" + strconv.Itoa(i)
	}
	for k := len(models.Fields) - 1; k >= 0; k-- {
		f := models.Fields[k]
		if c, ok := res.Lookup(f); ok && c.Index < len(out) {
			out[c.Index] = f.Key()
		}
	}
	return out
}
