package types

import (
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"

	mierrors "github.com/mite-eleven/mite-go/client/internal/errors"
)

var (
	filterKeys = []string{
		"customer_id", "project_id", "service_id", "user_id",
		"billable", "note", "at", "from", "to",
	}
	idFilterKeys = []string{"customer_id", "project_id", "service_id", "user_id"}
	groupingKeys = []string{"customer", "project", "service", "user", "day", "week", "month", "year"}
	atKeywords   = []string{"yesterday", "today", "last_week", "this_month", "last_month"}
)

// PrepareFilters normalizes time entry filters. Unsupported or invalid
// entries are dropped, unless strict is set in which case the first one
// (in key order) fails the call.
func PrepareFilters(f Filter, strict bool) (Params, error) {
	out, violations := NormalizeFilters(f)
	if strict {
		if err := mierrors.FromViolations(violations); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// NormalizeFilters returns the filters that survived normalization together
// with a violation for every entry that did not.
func NormalizeFilters(f Filter) (Params, []string) {
	out := Params{}
	var violations []string

	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := f[k]
		if !slices.Contains(filterKeys, k) {
			violations = append(violations, "Filter: "+k+": is not supported")
			continue
		}

		if k == "billable" {
			b, ok := ParseBool(v)
			if !ok {
				violations = append(violations, "Filter: billable: "+display(v)+" is not one of true or false or their abbreviations")
				continue
			}
			out[k] = BoolString(b)
			continue
		}

		if isEmpty(v) {
			violations = append(violations, "Filter: "+k+": no values provided")
			continue
		}

		switch {
		case slices.Contains(idFilterKeys, k):
			ids, allValid := idList(v)
			if !allValid {
				violations = append(violations, "Filter: "+k+": no valid values provided or some of the values are invalid")
			}
			if len(ids) > 0 {
				out[k] = strings.Join(ids, ",")
			}
		case k == "from" || k == "to":
			d, ok := ParseDate(v)
			if !ok {
				violations = append(violations, "Filter: "+k+": "+display(v)+" is not a valid date")
				continue
			}
			out[k] = d
		case k == "at":
			if s, ok := v.(string); ok && slices.Contains(atKeywords, s) {
				out[k] = s
				continue
			}
			d, ok := ParseDate(v)
			if !ok {
				violations = append(violations, "Filter: at: "+display(v)+" is not a valid date or keyword")
				continue
			}
			out[k] = d
		case k == "note":
			out[k] = display(v)
		}
	}
	return out, violations
}

// idList flattens a scalar, comma separated string or slice into positive
// integer strings. allValid is false when any element was rejected.
func idList(v any) (ids []string, allValid bool) {
	items, ok := sliceItems(v)
	if !ok {
		if s, isStr := v.(string); isStr {
			for _, part := range strings.Split(s, ",") {
				items = append(items, strings.TrimSpace(part))
			}
		} else {
			items = []any{v}
		}
	}

	allValid = true
	for _, item := range items {
		n, ok := ToInt64(item)
		if !ok || n < 1 {
			allValid = false
			continue
		}
		ids = append(ids, strconv.FormatInt(n, 10))
	}
	return ids, allValid
}

// sliceItems returns the elements of any slice or array value.
func sliceItems(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// PrepareGrouping keeps the supported group_by keys in the given order.
// With strict set the first unsupported key fails the call.
func PrepareGrouping(groups []string, strict bool) ([]string, error) {
	kept, violations := NormalizeGrouping(groups)
	if strict {
		if err := mierrors.FromViolations(violations); err != nil {
			return nil, err
		}
	}
	return kept, nil
}

// NormalizeGrouping splits groups into supported keys and violations.
func NormalizeGrouping(groups []string) ([]string, []string) {
	var kept, violations []string
	for _, g := range groups {
		if !slices.Contains(groupingKeys, g) {
			violations = append(violations, "GroupBy: "+g+": is not supported")
			continue
		}
		kept = append(kept, g)
	}
	return kept, violations
}
