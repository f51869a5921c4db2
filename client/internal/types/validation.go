package types

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/tj/go-naturaldate"

	mierrors "github.com/mite-eleven/mite-go/client/internal/errors"
)

// DateLayout is the wire format of every date the API accepts.
const DateLayout = "2006-01-02"

// now is the reference time for relative date expressions.
var now = time.Now

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"02.01.2006",
	"01/02/2006",
	"2 January 2006",
	"January 2, 2006",
}

// relativeDate is the complete grammar of relative expressions handed to
// naturaldate, which returns its reference time for input it does not
// understand.
var relativeDate = regexp.MustCompile(`(?i)^(?:` +
	`now|today|yesterday|tomorrow` +
	`|(?:last|next)\s+(?:day|week|month|year|monday|tuesday|wednesday|thursday|friday|saturday|sunday)` +
	`|\d+\s+(?:day|week|month|year)s?\s+ago` +
	`)$`)

// ValidateID checks a resource id before any request is built.
func ValidateID(id int64) error {
	if id < 0 {
		return mierrors.NewInvalidArgument("ID must be a positive integer got: %d", id)
	}
	return nil
}

// PrepareLimit validates pagination. Zero means unset for both values.
func PrepareLimit(limit, page int) (Params, error) {
	if page != 0 && limit == 0 {
		return nil, mierrors.NewInvalidArgument("Page is only working with limit")
	}
	if limit < 0 {
		return nil, mierrors.NewInvalidArgument("limit must be greater than 0 got: %d", limit)
	}
	if page < 0 {
		return nil, mierrors.NewInvalidArgument("page must be greater than 0 got: %d", page)
	}
	p := Params{}
	if limit > 0 {
		p["limit"] = limit
	}
	if page > 0 {
		p["page"] = page
	}
	return p, nil
}

// ParseBool interprets bool-like values: true/false, 1/0, yes/no, on/off.
// The empty string is false. ok is false when v is none of these.
func ParseBool(v any) (value bool, ok bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "1", "true", "on", "yes":
			return true, true
		case "0", "false", "off", "no", "":
			return false, true
		}
		return false, false
	case nil:
		return false, false
	}
	n, ok := ToInt64(v)
	if !ok {
		return false, false
	}
	switch n {
	case 1:
		return true, true
	case 0:
		return false, true
	}
	return false, false
}

// BoolString renders b the way the API expects booleans: as a string literal.
func BoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// ToInt64 coerces integer-like values. Floats must be integral and strings
// must be base-10 integers.
func ToInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case nil, bool:
		return 0, false
	case float32:
		if float32(int64(n)) != n {
			return 0, false
		}
		return int64(n), true
	case float64:
		if float64(int64(n)) != n {
			return 0, false
		}
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	i, err := cast.ToInt64E(v)
	return i, err == nil
}

// ParseDate normalizes v to YYYY-MM-DD. It accepts time.Time, common
// absolute layouts and relative expressions such as "yesterday" or
// "3 days ago".
func ParseDate(v any) (string, bool) {
	switch d := v.(type) {
	case time.Time:
		if d.IsZero() {
			return "", false
		}
		return d.Format(DateLayout), true
	case *time.Time:
		if d == nil || d.IsZero() {
			return "", false
		}
		return d.Format(DateLayout), true
	case string:
		return parseDateString(d)
	}
	return "", false
}

func parseDateString(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), true
		}
	}
	s = strings.Join(strings.Fields(s), " ")
	if !relativeDate.MatchString(s) {
		return "", false
	}
	t, err := naturaldate.Parse(s, now())
	if err != nil {
		return "", false
	}
	return t.Format(DateLayout), true
}

// isEmpty reports whether a filter value counts as "no value provided".
func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	}
	if items, ok := sliceItems(v); ok {
		return len(items) == 0
	}
	return false
}

// display renders a value for validation messages.
func display(v any) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprintf("%v", v)
}
