package types

import (
	"reflect"
	"slices"
	"sort"
	"strings"
	"time"

	mierrors "github.com/mite-eleven/mite-go/client/internal/errors"
)

// fieldRule normalizes one payload value. A nil result drops the field.
type fieldRule func(key string, v any) (any, error)

// payloadSchema is the allow-list and coercion table of one resource.
type payloadSchema struct {
	wrapper string
	rules   map[string]fieldRule
}

var (
	entrySchema = payloadSchema{
		wrapper: KeyTimeEntry,
		rules: map[string]fieldRule{
			"date_at":    passthrough,
			"minutes":    passthrough,
			"note":       passthrough,
			"user_id":    passthrough,
			"project_id": passthrough,
			"service_id": passthrough,
			"locked":     boolField(true),
		},
	}

	customerSchema = payloadSchema{
		wrapper: KeyCustomer,
		rules: map[string]fieldRule{
			"name":                     nameField,
			"note":                     passthrough,
			"archived":                 boolField(true),
			"hourly_rate":              nonNegativeInt("Hourly Rate"),
			"hourly_rates_per_service": collectionField,
			"active_hourly_rate":       activeHourlyRate,
		},
	}

	projectSchema = payloadSchema{
		wrapper: KeyProject,
		rules: map[string]fieldRule{
			"name":                               nameField,
			"note":                               passthrough,
			"budget":                             nonNegativeInt("Budget"),
			"budget_type":                        enumField("Budget type", "minutes", "cent"),
			"archived":                           boolField(false),
			"customer_id":                        nonNegativeInt("Customer"),
			"hourly_rate":                        nonNegativeInt("Hourly Rate"),
			"hourly_rates_per_service":           collectionField,
			"active_hourly_rate":                 activeHourlyRate,
			"update_hourly_rate_on_time_entries": boolField(false),
		},
	}

	serviceSchema = payloadSchema{
		wrapper: KeyService,
		rules: map[string]fieldRule{
			"name":                               nameField,
			"note":                               passthrough,
			"hourly_rate":                        nonNegativeInt("Hourly Rate"),
			"billable":                           boolField(false),
			"archived":                           boolField(false),
			"update_hourly_rate_on_time_entries": boolField(false),
		},
	}
)

// PrepareEntryData builds the {"time_entry": {...}} payload.
func PrepareEntryData(data Params) (Params, error) { return entrySchema.prepare(data) }

// PrepareCustomerData builds the {"customer": {...}} payload.
func PrepareCustomerData(data Params) (Params, error) { return customerSchema.prepare(data) }

// PrepareProjectData builds the {"project": {...}} payload.
func PrepareProjectData(data Params) (Params, error) { return projectSchema.prepare(data) }

// PrepareServiceData builds the {"service": {...}} payload.
func PrepareServiceData(data Params) (Params, error) { return serviceSchema.prepare(data) }

// prepare filters data against the allow-list, drops nil values, formats
// dates and applies the per-field rules. All violations are reported.
func (s payloadSchema) prepare(data Params) (Params, error) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := Params{}
	var violations []string
	for _, k := range keys {
		rule, ok := s.rules[k]
		if !ok {
			continue
		}
		v := data[k]
		if isNil(v) {
			continue
		}
		switch t := v.(type) {
		case time.Time:
			v = t.Format(DateLayout)
		case *time.Time:
			v = t.Format(DateLayout)
		}
		nv, err := rule(k, v)
		if err != nil {
			violations = append(violations, err.Error())
			continue
		}
		if nv != nil {
			fields[k] = nv
		}
	}
	if err := mierrors.FromViolations(violations); err != nil {
		return nil, err
	}
	return Params{s.wrapper: fields}, nil
}

func passthrough(_ string, v any) (any, error) { return v, nil }

func nameField(_ string, v any) (any, error) {
	s := display(v)
	if s == "" {
		return nil, mierrors.NewInvalidArgument("Name: expected a non-empty string")
	}
	return s, nil
}

func nonNegativeInt(label string) fieldRule {
	return func(_ string, v any) (any, error) {
		n, ok := ToInt64(v)
		if !ok || n < 0 {
			return nil, mierrors.NewInvalidArgument("%s: expected int >= 0 got: %s", label, display(v))
		}
		return n, nil
	}
}

func enumField(label string, allowed ...string) fieldRule {
	return func(_ string, v any) (any, error) {
		s, _ := v.(string)
		if !slices.Contains(allowed, s) {
			return nil, mierrors.NewInvalidArgument("%s: expected one of (%s) got: %s", label, strings.Join(allowed, "|"), display(v))
		}
		return s, nil
	}
}

var activeHourlyRate = enumField("Active hourly rate", "hourly_rate", "hourly_rates_per_service")

// boolField renders bool-like values as "true"/"false". Lenient fields drop
// unparseable values instead of failing.
func boolField(lenient bool) fieldRule {
	return func(key string, v any) (any, error) {
		b, ok := ParseBool(v)
		if ok {
			return BoolString(b), nil
		}
		if lenient {
			return nil, nil
		}
		return nil, mierrors.NewInvalidArgument("%s: expected true or false got: %s", key, display(v))
	}
}

func collectionField(_ string, v any) (any, error) {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return v, nil
	}
	return nil, mierrors.NewInvalidArgument("Hourly Rates Per Service: expected array got: %s", display(v))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
