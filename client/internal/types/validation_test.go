package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mierrors "github.com/mite-eleven/mite-go/client/internal/errors"
)

func TestValidateID(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateID(0))
	assert.NoError(t, ValidateID(42))

	err := ValidateID(-1)
	var ia *mierrors.InvalidArgumentError
	require.ErrorAs(t, err, &ia)
	assert.Equal(t, "ID must be a positive integer got: -1", ia.Message)
}

func TestPrepareLimit(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		limit   int
		page    int
		want    Params
		wantErr string
	}{
		{name: "unset", want: Params{}},
		{name: "limit only", limit: 10, want: Params{"limit": 10}},
		{name: "limit and page", limit: 10, page: 1, want: Params{"limit": 10, "page": 1}},
		{name: "page without limit", page: 5, wantErr: "Page is only working with limit"},
		{name: "negative limit", limit: -1, wantErr: "limit must be greater than 0 got: -1"},
		{name: "negative page", limit: 5, page: -2, wantErr: "page must be greater than 0 got: -2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := PrepareLimit(c.limit, c.page)
			if c.wantErr != "" {
				require.Error(t, err)
				assert.True(t, mierrors.IsInvalidArgument(err))
				assert.Equal(t, c.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParseBool(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in     any
		want   bool
		wantOK bool
	}{
		{true, true, true},
		{false, false, true},
		{"yes", true, true},
		{"On", true, true},
		{"1", true, true},
		{"no", false, true},
		{"off", false, true},
		{"", false, true},
		{1, true, true},
		{0, false, true},
		{99, false, false},
		{"maybe", false, false},
		{nil, false, false},
		{[]string{"true"}, false, false},
	}
	for _, c := range cases {
		got, ok := ParseBool(c.in)
		assert.Equal(t, c.wantOK, ok, "ok for %#v", c.in)
		assert.Equal(t, c.want, got, "value for %#v", c.in)
	}
}

func TestToInt64(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in     any
		want   int64
		wantOK bool
	}{
		{5, 5, true},
		{int32(7), 7, true},
		{uint8(3), 3, true},
		{2.0, 2, true},
		{2.5, 0, false},
		{" 12 ", 12, true},
		{"1e3", 0, false},
		{"abc", 0, false},
		{true, 0, false},
		{nil, 0, false},
	}
	for _, c := range cases {
		got, ok := ToInt64(c.in)
		assert.Equal(t, c.wantOK, ok, "ok for %#v", c.in)
		if c.wantOK {
			assert.Equal(t, c.want, got, "value for %#v", c.in)
		}
	}
}

func TestParseDate(t *testing.T) {
	ref := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	prev := now
	now = func() time.Time { return ref }
	t.Cleanup(func() { now = prev })

	cases := []struct {
		in     any
		want   string
		wantOK bool
	}{
		{"2012-01-01", "2012-01-01", true},
		{"2012-01-01T10:30:00Z", "2012-01-01", true},
		{"24.12.2013", "2013-12-24", true},
		{time.Date(2020, 2, 29, 23, 0, 0, 0, time.UTC), "2020-02-29", true},
		{"yesterday", "2024-03-14", true},
		{"2 days ago", "2024-03-13", true},
		{"not-a-date", "", false},
		{"this is garbage", "", false},
		{"not a day", "", false},
		{"last nonsense", "", false},
		{"next blah", "", false},
		{"week", "", false},
		{"the year of the dragon", "", false},
		{"", "", false},
		{time.Time{}, "", false},
		{42, "", false},
	}
	for _, c := range cases {
		got, ok := ParseDate(c.in)
		assert.Equal(t, c.wantOK, ok, "ok for %#v", c.in)
		assert.Equal(t, c.want, got, "value for %#v", c.in)
	}
}
