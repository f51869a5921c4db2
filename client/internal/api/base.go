package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	mierrors "github.com/mite-eleven/mite-go/client/internal/errors"
	"github.com/mite-eleven/mite-go/client/internal/types"
	"github.com/mite-eleven/mite-go/client/internal/wire"
)

// Caller performs one API round trip. *wire.Adapter satisfies it.
type Caller interface {
	Call(ctx context.Context, method, path string, params types.Params, opts ...wire.CallOption) (*wire.Outcome, error)
}

// minSearchLen is the shortest accepted search term.
const minSearchLen = 2

// checkContext reports a done context through the error taxonomy: an expired
// deadline is APIUnavailableError, a cancellation a RuntimeAPIError.
func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return mierrors.FromTransport(err)
	}
	return nil
}

func itemPath(collection string, id int64) string {
	return fmt.Sprintf("/%s/%d.json", collection, id)
}

// getByID fetches a single resource and decodes the object under key into v.
// A 404 or a response without key becomes the resource's NotFoundError.
func getByID(ctx context.Context, c Caller, res mierrors.Resource, collection, key string, id int64, v any) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if err := types.ValidateID(id); err != nil {
		return err
	}
	out, err := c.Call(ctx, http.MethodGet, itemPath(collection, id), nil)
	if err != nil {
		return mierrors.MapNotFound(err, res, id)
	}
	raw, ok := wrapped(out, key)
	if !ok {
		return mierrors.NewNotFound(res, id, nil)
	}
	return decodeInto(raw, v)
}

// getSingleton fetches a parameterless resource such as the account.
func getSingleton(ctx context.Context, c Caller, path, key string, v any) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	out, err := c.Call(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	raw, ok := wrapped(out, key)
	if !ok {
		return missingWrapper(key)
	}
	return decodeInto(raw, v)
}

// create posts payload and decodes the created object under key into v.
func create(ctx context.Context, c Caller, path, key string, payload types.Params, v any) error {
	out, err := c.Call(ctx, http.MethodPost, path, payload)
	if err != nil {
		return err
	}
	raw, ok := wrapped(out, key)
	if !ok {
		return missingWrapper(key)
	}
	return decodeInto(raw, v)
}

// update sends payload with PUT. The API acknowledges with an empty body.
func update(ctx context.Context, c Caller, res mierrors.Resource, collection string, id int64, payload types.Params) error {
	_, err := c.Call(ctx, http.MethodPut, itemPath(collection, id), payload)
	return mierrors.MapNotFound(err, res, id)
}

// remove deletes a single resource.
func remove(ctx context.Context, c Caller, res mierrors.Resource, collection string, id int64) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if err := types.ValidateID(id); err != nil {
		return err
	}
	_, err := c.Call(ctx, http.MethodDelete, itemPath(collection, id), nil)
	return mierrors.MapNotFound(err, res, id)
}

// list fetches a collection and unwraps every element under key. Elements
// without key are skipped; an empty acknowledgement is an empty list.
func list[T any](ctx context.Context, c Caller, path, key string, params types.Params) ([]T, error) {
	out, err := c.Call(ctx, http.MethodGet, path, params)
	if err != nil {
		return nil, err
	}
	items, err := wrappedItems(out)
	if err != nil {
		return nil, err
	}
	res := make([]T, 0, len(items))
	for _, item := range items {
		raw, ok := item[key]
		if !ok {
			continue
		}
		var v T
		if err := decodeInto(raw, &v); err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

func wrapped(out *wire.Outcome, key string) (json.RawMessage, bool) {
	if out == nil || out.Kind != wire.KindData {
		return nil, false
	}
	var env map[string]json.RawMessage
	if err := out.Decode(&env); err != nil {
		return nil, false
	}
	raw, ok := env[key]
	return raw, ok
}

func wrappedItems(out *wire.Outcome) ([]map[string]json.RawMessage, error) {
	if out == nil || out.Kind == wire.KindAck {
		return nil, nil
	}
	var items []map[string]json.RawMessage
	if err := out.Decode(&items); err != nil {
		return nil, &mierrors.RuntimeAPIError{Message: "Cannot decode data", Code: mierrors.CodeEncoding, Err: err}
	}
	return items, nil
}

func decodeInto(raw json.RawMessage, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return &mierrors.RuntimeAPIError{Message: "Cannot decode data", Code: mierrors.CodeEncoding, Err: err}
	}
	return nil
}

func missingWrapper(key string) error {
	return &mierrors.RuntimeAPIError{
		Message: fmt.Sprintf("response has no %s", key),
		Code:    mierrors.CodeEncoding,
	}
}

// listParams merges the optional name filter with validated pagination.
func listParams(name string, limit, page int) (types.Params, error) {
	params, err := types.PrepareLimit(limit, page)
	if err != nil {
		return nil, err
	}
	if name != "" {
		params["name"] = name
	}
	return params, nil
}

func checkSearchTerm(terms ...string) error {
	for _, t := range terms {
		if len(t) >= minSearchLen {
			return nil
		}
	}
	return mierrors.NewInvalidArgument("The search term must be at least %d characters long", minSearchLen)
}

// withName copies options and sets name, rejecting an empty name.
func withName(name string, options types.Params, what string) (types.Params, error) {
	if name == "" {
		return nil, mierrors.NewInvalidArgument("Name: you must provide a valid name for the %s got: %s", what, name)
	}
	data := make(types.Params, len(options)+1)
	for k, v := range options {
		data[k] = v
	}
	data["name"] = name
	return data, nil
}
