package api

import (
	"context"

	mierrors "github.com/mite-eleven/mite-go/client/internal/errors"
	"github.com/mite-eleven/mite-go/client/internal/types"
)

const servicesCollection = "services"

// ListServices lists active services, optionally filtered by name.
func ListServices(ctx context.Context, c Caller, opts types.ListOptions) ([]types.Service, error) {
	return listServices(ctx, c, "/services.json", opts)
}

// ListArchivedServices lists archived services, optionally filtered by name.
func ListArchivedServices(ctx context.Context, c Caller, opts types.ListOptions) ([]types.Service, error) {
	return listServices(ctx, c, "/services/archived.json", opts)
}

func listServices(ctx context.Context, c Caller, path string, opts types.ListOptions) ([]types.Service, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	params, err := listParams(opts.Name, opts.Limit, opts.Page)
	if err != nil {
		return nil, err
	}
	return list[types.Service](ctx, c, path, types.KeyService, params)
}

// SearchServices returns active followed by archived services matching name.
func SearchServices(ctx context.Context, c Caller, name string) ([]types.Service, error) {
	if err := checkSearchTerm(name); err != nil {
		return nil, err
	}
	active, err := ListServices(ctx, c, types.ListOptions{Name: name})
	if err != nil {
		return nil, err
	}
	archived, err := ListArchivedServices(ctx, c, types.ListOptions{Name: name})
	if err != nil {
		return nil, err
	}
	return append(active, archived...), nil
}

// GetService returns the service with the given id.
func GetService(ctx context.Context, c Caller, id int64) (*types.Service, error) {
	var s types.Service
	if err := getByID(ctx, c, mierrors.ResourceService, servicesCollection, types.KeyService, id, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateService creates a service named name.
func CreateService(ctx context.Context, c Caller, name string, options types.Params) (*types.Service, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	data, err := withName(name, options, "service")
	if err != nil {
		return nil, err
	}
	payload, err := types.PrepareServiceData(data)
	if err != nil {
		return nil, err
	}
	var s types.Service
	if err := create(ctx, c, "/services.json", types.KeyService, payload, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateService changes the given fields of a service.
func UpdateService(ctx context.Context, c Caller, id int64, options types.Params) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if err := types.ValidateID(id); err != nil {
		return err
	}
	payload, err := types.PrepareServiceData(options)
	if err != nil {
		return err
	}
	return update(ctx, c, mierrors.ResourceService, servicesCollection, id, payload)
}

// DeleteService removes a service.
func DeleteService(ctx context.Context, c Caller, id int64) error {
	return remove(ctx, c, mierrors.ResourceService, servicesCollection, id)
}
