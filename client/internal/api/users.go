package api

import (
	"context"

	mierrors "github.com/mite-eleven/mite-go/client/internal/errors"
	"github.com/mite-eleven/mite-go/client/internal/types"
)

const usersCollection = "users"

// ListUsers lists active users, optionally filtered by name and email.
func ListUsers(ctx context.Context, c Caller, opts types.UserListOptions) ([]types.User, error) {
	return listUsers(ctx, c, "/users.json", opts)
}

// ListArchivedUsers lists archived users, optionally filtered by name and email.
func ListArchivedUsers(ctx context.Context, c Caller, opts types.UserListOptions) ([]types.User, error) {
	return listUsers(ctx, c, "/users/archived.json", opts)
}

func listUsers(ctx context.Context, c Caller, path string, opts types.UserListOptions) ([]types.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	params, err := listParams(opts.Name, opts.Limit, opts.Page)
	if err != nil {
		return nil, err
	}
	if opts.Email != "" {
		params["email"] = opts.Email
	}
	return list[types.User](ctx, c, path, types.KeyUser, params)
}

// SearchUsers returns active followed by archived users matching name or
// email. At least one of them must be a usable search term.
func SearchUsers(ctx context.Context, c Caller, name, email string) ([]types.User, error) {
	if err := checkSearchTerm(name, email); err != nil {
		return nil, err
	}
	opts := types.UserListOptions{ListOptions: types.ListOptions{Name: name}, Email: email}
	active, err := ListUsers(ctx, c, opts)
	if err != nil {
		return nil, err
	}
	archived, err := ListArchivedUsers(ctx, c, opts)
	if err != nil {
		return nil, err
	}
	return append(active, archived...), nil
}

// GetUser returns the user with the given id.
func GetUser(ctx context.Context, c Caller, id int64) (*types.User, error) {
	var u types.User
	if err := getByID(ctx, c, mierrors.ResourceUser, usersCollection, types.KeyUser, id, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
