package api

import (
	"context"

	mierrors "github.com/mite-eleven/mite-go/client/internal/errors"
	"github.com/mite-eleven/mite-go/client/internal/types"
)

const projectsCollection = "projects"

// ListProjects lists active projects, optionally filtered by name and customer.
func ListProjects(ctx context.Context, c Caller, opts types.ProjectListOptions) ([]types.Project, error) {
	return listProjects(ctx, c, "/projects.json", opts)
}

// ListArchivedProjects lists archived projects, optionally filtered by name and customer.
func ListArchivedProjects(ctx context.Context, c Caller, opts types.ProjectListOptions) ([]types.Project, error) {
	return listProjects(ctx, c, "/projects/archived.json", opts)
}

func listProjects(ctx context.Context, c Caller, path string, opts types.ProjectListOptions) ([]types.Project, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if opts.CustomerID < 0 {
		return nil, mierrors.NewInvalidArgument("customer_id must be a positive integer got: %d", opts.CustomerID)
	}
	params, err := listParams(opts.Name, opts.Limit, opts.Page)
	if err != nil {
		return nil, err
	}
	if opts.CustomerID > 0 {
		params["customer_id"] = opts.CustomerID
	}
	return list[types.Project](ctx, c, path, types.KeyProject, params)
}

// SearchProjects returns active followed by archived projects matching name.
func SearchProjects(ctx context.Context, c Caller, name string) ([]types.Project, error) {
	if err := checkSearchTerm(name); err != nil {
		return nil, err
	}
	opts := types.ProjectListOptions{ListOptions: types.ListOptions{Name: name}}
	active, err := ListProjects(ctx, c, opts)
	if err != nil {
		return nil, err
	}
	archived, err := ListArchivedProjects(ctx, c, opts)
	if err != nil {
		return nil, err
	}
	return append(active, archived...), nil
}

// GetProject returns the project with the given id.
func GetProject(ctx context.Context, c Caller, id int64) (*types.Project, error) {
	var p types.Project
	if err := getByID(ctx, c, mierrors.ResourceProject, projectsCollection, types.KeyProject, id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProject creates a project named name.
func CreateProject(ctx context.Context, c Caller, name string, options types.Params) (*types.Project, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	data, err := withName(name, options, "project")
	if err != nil {
		return nil, err
	}
	payload, err := types.PrepareProjectData(data)
	if err != nil {
		return nil, err
	}
	var p types.Project
	if err := create(ctx, c, "/projects.json", types.KeyProject, payload, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProject changes the given fields of a project.
func UpdateProject(ctx context.Context, c Caller, id int64, options types.Params) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if err := types.ValidateID(id); err != nil {
		return err
	}
	payload, err := types.PrepareProjectData(options)
	if err != nil {
		return err
	}
	return update(ctx, c, mierrors.ResourceProject, projectsCollection, id, payload)
}

// DeleteProject removes a project.
func DeleteProject(ctx context.Context, c Caller, id int64) error {
	return remove(ctx, c, mierrors.ResourceProject, projectsCollection, id)
}
