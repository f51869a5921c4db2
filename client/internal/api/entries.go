package api

import (
	"context"
	"net/http"
	"strings"

	mierrors "github.com/mite-eleven/mite-go/client/internal/errors"
	"github.com/mite-eleven/mite-go/client/internal/types"
)

const entriesCollection = "time_entries"

// ListEntries lists time entries. Filters and grouping are normalized first;
// with opts.Strict the first invalid entry fails the call before any request.
func ListEntries(ctx context.Context, c Caller, opts types.EntryListOptions) (*types.TimeEntryList, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	params, err := types.PrepareFilters(opts.Filter, opts.Strict)
	if err != nil {
		return nil, err
	}
	groups, err := types.PrepareGrouping(opts.GroupBy, opts.Strict)
	if err != nil {
		return nil, err
	}
	if len(groups) > 0 {
		params["group_by"] = strings.Join(groups, ",")
	}
	limit, err := types.PrepareLimit(opts.Limit, opts.Page)
	if err != nil {
		return nil, err
	}
	for k, v := range limit {
		params[k] = v
	}

	out, err := c.Call(ctx, http.MethodGet, "/"+entriesCollection+".json", params)
	if err != nil {
		return nil, err
	}
	items, err := wrappedItems(out)
	if err != nil {
		return nil, err
	}

	res := &types.TimeEntryList{}
	for _, item := range items {
		if raw, ok := item[types.KeyTimeEntry]; ok {
			var e types.TimeEntry
			if err := decodeInto(raw, &e); err != nil {
				return nil, err
			}
			res.Entries = append(res.Entries, e)
			continue
		}
		if raw, ok := item[types.KeyTimeEntryGroup]; ok {
			var g types.TimeEntryGroup
			if err := decodeInto(raw, &g); err != nil {
				return nil, err
			}
			res.Groups = append(res.Groups, g)
		}
	}
	return res, nil
}

// GetEntry returns the time entry with the given id.
func GetEntry(ctx context.Context, c Caller, id int64) (*types.TimeEntry, error) {
	var e types.TimeEntry
	if err := getByID(ctx, c, mierrors.ResourceTimeEntry, entriesCollection, types.KeyTimeEntry, id, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEntry creates a time entry. Every field is optional.
func CreateEntry(ctx context.Context, c Caller, data types.Params) (*types.TimeEntry, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	payload, err := types.PrepareEntryData(data)
	if err != nil {
		return nil, err
	}
	var e types.TimeEntry
	if err := create(ctx, c, "/"+entriesCollection+".json", types.KeyTimeEntry, payload, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateEntry changes a time entry. force allows editing a locked entry.
func UpdateEntry(ctx context.Context, c Caller, id int64, data types.Params, force bool) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if err := types.ValidateID(id); err != nil {
		return err
	}
	payload, err := types.PrepareEntryData(data)
	if err != nil {
		return err
	}
	if force {
		payload[types.KeyTimeEntry].(types.Params)["force"] = "true"
	}
	return update(ctx, c, mierrors.ResourceTimeEntry, entriesCollection, id, payload)
}

// DeleteEntry removes a time entry.
func DeleteEntry(ctx context.Context, c Caller, id int64) error {
	return remove(ctx, c, mierrors.ResourceTimeEntry, entriesCollection, id)
}
