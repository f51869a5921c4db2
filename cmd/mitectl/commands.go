package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mite-eleven/mite-go/client"
)

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// ----------------------------------------------------------------------
// entries
// ----------------------------------------------------------------------

func newEntriesCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "entries", Short: "Manage time entries"}

	var filters, groupBy []string
	var limit, page int
	var strict bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List time entries",
		Example: `  mitectl entries list --filter at=last_week --filter customer_id=1,2
  mitectl entries list --group-by customer,week`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parsePairs(filters)
			if err != nil {
				return err
			}
			return o.run(cmd, "list entries", func(ctx context.Context, c *client.Client) (any, error) {
				return c.ListEntries(ctx, client.EntryListOptions{
					Filter:  client.Filter(f),
					GroupBy: groupBy,
					Limit:   limit,
					Page:    page,
					Strict:  strict,
				})
			})
		},
	}
	list.Flags().StringArrayVar(&filters, "filter", nil, "filter as key=value (customer_id, project_id, service_id, user_id, billable, note, at, from, to)")
	list.Flags().StringSliceVar(&groupBy, "group-by", nil, "group by customer, project, service, user, day, week, month or year")
	addPaging(list, &limit, &page)
	list.Flags().BoolVar(&strict, "strict", false, "fail on unsupported or invalid filters instead of dropping them")

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show a time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return o.run(cmd, "get entry", func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetEntry(ctx, id)
			})
		},
	}

	var createFields []string
	create := &cobra.Command{
		Use:     "create",
		Short:   "Create a time entry",
		Example: `  mitectl entries create --set date_at=2024-03-15 --set minutes=90 --set note="code review"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parsePairs(createFields)
			if err != nil {
				return err
			}
			return o.run(cmd, "create entry", func(ctx context.Context, c *client.Client) (any, error) {
				return c.CreateEntry(ctx, data)
			})
		},
	}
	create.Flags().StringArrayVar(&createFields, "set", nil, "field as key=value (date_at, minutes, note, user_id, project_id, service_id, locked)")

	var updateFields []string
	var force bool
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Update a time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			data, err := parsePairs(updateFields)
			if err != nil {
				return err
			}
			return o.run(cmd, "update entry", func(ctx context.Context, c *client.Client) (any, error) {
				return ack(c.UpdateEntry(ctx, id, data, force))
			})
		},
	}
	update.Flags().StringArrayVar(&updateFields, "set", nil, "field as key=value")
	update.Flags().BoolVar(&force, "force", false, "edit a locked entry")

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return o.run(cmd, "delete entry", func(ctx context.Context, c *client.Client) (any, error) {
				return ack(c.DeleteEntry(ctx, id))
			})
		},
	}

	cmd.AddCommand(list, get, create, update, del)
	return cmd
}

func addPaging(cmd *cobra.Command, limit, page *int) {
	cmd.Flags().IntVar(limit, "limit", 0, "maximum number of records")
	cmd.Flags().IntVar(page, "page", 0, "page to fetch (requires --limit)")
}

type ackResult struct {
	OK bool `json:"ok"`
}

func ack(err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return ackResult{OK: true}, nil
}

// ----------------------------------------------------------------------
// customers, projects, services
// ----------------------------------------------------------------------

// catalog describes one of the name-keyed resources sharing the
// list/archived/search/get/create/update/delete command set.
type catalog struct {
	use, singular string
	list          func(ctx context.Context, c *client.Client, archived bool, name string, limit, page int) (any, error)
	search        func(ctx context.Context, c *client.Client, name string) (any, error)
	get           func(ctx context.Context, c *client.Client, id int64) (any, error)
	create        func(ctx context.Context, c *client.Client, name string, p client.Params) (any, error)
	update        func(ctx context.Context, c *client.Client, id int64, p client.Params) error
	del           func(ctx context.Context, c *client.Client, id int64) error
	// extraListFlags registers resource specific flags on list and archived.
	extraListFlags func(cmd *cobra.Command)
}

func newCustomersCmd(o *rootOptions) *cobra.Command {
	return o.catalogCmd(catalog{
		use:      "customers",
		singular: "customer",
		list: func(ctx context.Context, c *client.Client, archived bool, name string, limit, page int) (any, error) {
			opts := client.ListOptions{Name: name, Limit: limit, Page: page}
			if archived {
				return c.ListArchivedCustomers(ctx, opts)
			}
			return c.ListCustomers(ctx, opts)
		},
		search: func(ctx context.Context, c *client.Client, name string) (any, error) { return c.SearchCustomers(ctx, name) },
		get:    func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.GetCustomer(ctx, id) },
		create: func(ctx context.Context, c *client.Client, name string, p client.Params) (any, error) {
			return c.CreateCustomer(ctx, name, p)
		},
		update: func(ctx context.Context, c *client.Client, id int64, p client.Params) error { return c.UpdateCustomer(ctx, id, p) },
		del:    func(ctx context.Context, c *client.Client, id int64) error { return c.DeleteCustomer(ctx, id) },
	})
}

func newProjectsCmd(o *rootOptions) *cobra.Command {
	var customerID int64
	return o.catalogCmd(catalog{
		use:      "projects",
		singular: "project",
		list: func(ctx context.Context, c *client.Client, archived bool, name string, limit, page int) (any, error) {
			opts := client.ProjectListOptions{ListOptions: client.ListOptions{Name: name, Limit: limit, Page: page}, CustomerID: customerID}
			if archived {
				return c.ListArchivedProjects(ctx, opts)
			}
			return c.ListProjects(ctx, opts)
		},
		search: func(ctx context.Context, c *client.Client, name string) (any, error) { return c.SearchProjects(ctx, name) },
		get:    func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.GetProject(ctx, id) },
		create: func(ctx context.Context, c *client.Client, name string, p client.Params) (any, error) {
			return c.CreateProject(ctx, name, p)
		},
		update: func(ctx context.Context, c *client.Client, id int64, p client.Params) error { return c.UpdateProject(ctx, id, p) },
		del:    func(ctx context.Context, c *client.Client, id int64) error { return c.DeleteProject(ctx, id) },
		extraListFlags: func(cmd *cobra.Command) {
			cmd.Flags().Int64Var(&customerID, "customer-id", 0, "only projects of this customer")
		},
	})
}

func newServicesCmd(o *rootOptions) *cobra.Command {
	return o.catalogCmd(catalog{
		use:      "services",
		singular: "service",
		list: func(ctx context.Context, c *client.Client, archived bool, name string, limit, page int) (any, error) {
			opts := client.ListOptions{Name: name, Limit: limit, Page: page}
			if archived {
				return c.ListArchivedServices(ctx, opts)
			}
			return c.ListServices(ctx, opts)
		},
		search: func(ctx context.Context, c *client.Client, name string) (any, error) { return c.SearchServices(ctx, name) },
		get:    func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.GetService(ctx, id) },
		create: func(ctx context.Context, c *client.Client, name string, p client.Params) (any, error) {
			return c.CreateService(ctx, name, p)
		},
		update: func(ctx context.Context, c *client.Client, id int64, p client.Params) error { return c.UpdateService(ctx, id, p) },
		del:    func(ctx context.Context, c *client.Client, id int64) error { return c.DeleteService(ctx, id) },
	})
}

func (o *rootOptions) catalogCmd(cat catalog) *cobra.Command {
	cmd := &cobra.Command{Use: cat.use, Short: "Manage " + cat.use}

	listCmd := func(use string, archived bool) *cobra.Command {
		var name string
		var limit, page int
		short := "List active " + cat.use
		if archived {
			short = "List archived " + cat.use
		}
		c := &cobra.Command{
			Use:   use,
			Short: short,
			RunE: func(cmd *cobra.Command, args []string) error {
				return o.run(cmd, use+" "+cat.use, func(ctx context.Context, c *client.Client) (any, error) {
					return cat.list(ctx, c, archived, name, limit, page)
				})
			},
		}
		c.Flags().StringVar(&name, "name", "", "filter by name")
		addPaging(c, &limit, &page)
		if cat.extraListFlags != nil {
			cat.extraListFlags(c)
		}
		return c
	}

	search := &cobra.Command{
		Use:   "search NAME",
		Short: "Search active and archived " + cat.use,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, "search "+cat.use, func(ctx context.Context, c *client.Client) (any, error) {
				return cat.search(ctx, c, args[0])
			})
		},
	}

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show a " + cat.singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return o.run(cmd, "get "+cat.singular, func(ctx context.Context, c *client.Client) (any, error) {
				return cat.get(ctx, c, id)
			})
		},
	}

	var createFields []string
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a " + cat.singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePairs(createFields)
			if err != nil {
				return err
			}
			return o.run(cmd, "create "+cat.singular, func(ctx context.Context, c *client.Client) (any, error) {
				return cat.create(ctx, c, args[0], p)
			})
		},
	}
	create.Flags().StringArrayVar(&createFields, "set", nil, "field as key=value")

	var updateFields []string
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Update a " + cat.singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := parsePairs(updateFields)
			if err != nil {
				return err
			}
			return o.run(cmd, "update "+cat.singular, func(ctx context.Context, c *client.Client) (any, error) {
				return ack(cat.update(ctx, c, id, p))
			})
		},
	}
	update.Flags().StringArrayVar(&updateFields, "set", nil, "field as key=value")

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a " + cat.singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return o.run(cmd, "delete "+cat.singular, func(ctx context.Context, c *client.Client) (any, error) {
				return ack(cat.del(ctx, c, id))
			})
		},
	}

	cmd.AddCommand(listCmd("list", false), listCmd("archived", true), search, get, create, update, del)
	return cmd
}

// ----------------------------------------------------------------------
// users and account
// ----------------------------------------------------------------------

func newUsersCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "users", Short: "Inspect users"}

	listCmd := func(use string, archived bool) *cobra.Command {
		var name, email string
		var limit, page int
		c := &cobra.Command{
			Use:   use,
			Short: "List users",
			RunE: func(cmd *cobra.Command, args []string) error {
				return o.run(cmd, use+" users", func(ctx context.Context, c *client.Client) (any, error) {
					opts := client.UserListOptions{ListOptions: client.ListOptions{Name: name, Limit: limit, Page: page}, Email: email}
					if archived {
						return c.ListArchivedUsers(ctx, opts)
					}
					return c.ListUsers(ctx, opts)
				})
			},
		}
		c.Flags().StringVar(&name, "name", "", "filter by name")
		c.Flags().StringVar(&email, "email", "", "filter by email")
		addPaging(c, &limit, &page)
		return c
	}

	var email string
	search := &cobra.Command{
		Use:   "search [NAME]",
		Short: "Search active and archived users by name or email",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			return o.run(cmd, "search users", func(ctx context.Context, c *client.Client) (any, error) {
				return c.SearchUsers(ctx, name, email)
			})
		},
	}
	search.Flags().StringVar(&email, "email", "", "search by email")

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return o.run(cmd, "get user", func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetUser(ctx, id)
			})
		},
	}

	cmd.AddCommand(listCmd("list", false), listCmd("archived", true), search, get)
	return cmd
}

func newAccountCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show the account of the configured credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, "account", func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetAccount(ctx)
			})
		},
	}
}

func newMyselfCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "myself",
		Short: "Show the user of the configured credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, "myself", func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetMyself(ctx)
			})
		},
	}
}
