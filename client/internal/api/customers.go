package api

import (
	"context"

	mierrors "github.com/mite-eleven/mite-go/client/internal/errors"
	"github.com/mite-eleven/mite-go/client/internal/types"
)

const customersCollection = "customers"

// ListCustomers lists active customers, optionally filtered by name.
func ListCustomers(ctx context.Context, c Caller, opts types.ListOptions) ([]types.Customer, error) {
	return listCustomers(ctx, c, "/customers.json", opts)
}

// ListArchivedCustomers lists archived customers, optionally filtered by name.
func ListArchivedCustomers(ctx context.Context, c Caller, opts types.ListOptions) ([]types.Customer, error) {
	return listCustomers(ctx, c, "/customers/archived.json", opts)
}

func listCustomers(ctx context.Context, c Caller, path string, opts types.ListOptions) ([]types.Customer, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	params, err := listParams(opts.Name, opts.Limit, opts.Page)
	if err != nil {
		return nil, err
	}
	return list[types.Customer](ctx, c, path, types.KeyCustomer, params)
}

// SearchCustomers returns active followed by archived customers matching
// name. Pagination is not available.
func SearchCustomers(ctx context.Context, c Caller, name string) ([]types.Customer, error) {
	if err := checkSearchTerm(name); err != nil {
		return nil, err
	}
	active, err := ListCustomers(ctx, c, types.ListOptions{Name: name})
	if err != nil {
		return nil, err
	}
	archived, err := ListArchivedCustomers(ctx, c, types.ListOptions{Name: name})
	if err != nil {
		return nil, err
	}
	return append(active, archived...), nil
}

// GetCustomer returns the customer with the given id.
func GetCustomer(ctx context.Context, c Caller, id int64) (*types.Customer, error) {
	var cu types.Customer
	if err := getByID(ctx, c, mierrors.ResourceCustomer, customersCollection, types.KeyCustomer, id, &cu); err != nil {
		return nil, err
	}
	return &cu, nil
}

// CreateCustomer creates a customer named name.
func CreateCustomer(ctx context.Context, c Caller, name string, options types.Params) (*types.Customer, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	data, err := withName(name, options, "customer")
	if err != nil {
		return nil, err
	}
	payload, err := types.PrepareCustomerData(data)
	if err != nil {
		return nil, err
	}
	var cu types.Customer
	if err := create(ctx, c, "/customers.json", types.KeyCustomer, payload, &cu); err != nil {
		return nil, err
	}
	return &cu, nil
}

// UpdateCustomer changes the given fields of a customer.
func UpdateCustomer(ctx context.Context, c Caller, id int64, options types.Params) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if err := types.ValidateID(id); err != nil {
		return err
	}
	payload, err := types.PrepareCustomerData(options)
	if err != nil {
		return err
	}
	return update(ctx, c, mierrors.ResourceCustomer, customersCollection, id, payload)
}

// DeleteCustomer removes a customer. The API refuses customers that still
// have projects.
func DeleteCustomer(ctx context.Context, c Caller, id int64) error {
	return remove(ctx, c, mierrors.ResourceCustomer, customersCollection, id)
}
