package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mierrors "github.com/mite-eleven/mite-go/client/internal/errors"
	"github.com/mite-eleven/mite-go/client/internal/types"
)

func TestListCustomers(t *testing.T) {
	t.Parallel()
	c, sb := newStub(t, jsonReply(http.StatusOK, `[{"customer":{"id":1,"name":"ACME"}},{"customer":{"id":2,"name":"Initech"}}]`))
	got, err := ListCustomers(context.Background(), c, types.ListOptions{Name: "ac", Limit: 5})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Initech", got[1].Name)

	req := sb.seen()[0]
	assert.Equal(t, "/customers.json", req.Path)
	q, _ := url.ParseQuery(req.Query)
	assert.Equal(t, url.Values{"name": {"ac"}, "limit": {"5"}}, q)
}

func TestListArchived_Paths(t *testing.T) {
	t.Parallel()
	c, sb := newStub(t, jsonReply(http.StatusOK, `[]`))
	ctx := context.Background()
	_, err := ListArchivedCustomers(ctx, c, types.ListOptions{})
	require.NoError(t, err)
	_, err = ListArchivedProjects(ctx, c, types.ProjectListOptions{CustomerID: 4})
	require.NoError(t, err)
	_, err = ListArchivedServices(ctx, c, types.ListOptions{})
	require.NoError(t, err)
	_, err = ListArchivedUsers(ctx, c, types.UserListOptions{Email: "jane@example.com"})
	require.NoError(t, err)

	reqs := sb.seen()
	require.Len(t, reqs, 4)
	assert.Equal(t, "/customers/archived.json", reqs[0].Path)
	assert.Equal(t, "/projects/archived.json", reqs[1].Path)
	assert.Equal(t, "customer_id=4", reqs[1].Query)
	assert.Equal(t, "/services/archived.json", reqs[2].Path)
	assert.Equal(t, "/users/archived.json", reqs[3].Path)
	assert.Equal(t, "email=jane%40example.com", reqs[3].Query)
}

func TestList_PaginationValidation(t *testing.T) {
	t.Parallel()
	c, sb := newStub(t, nil)
	ctx := context.Background()
	_, err := ListCustomers(ctx, c, types.ListOptions{Page: 2})
	assert.EqualError(t, err, "Page is only working with limit")
	_, err = ListServices(ctx, c, types.ListOptions{Limit: -1})
	assert.True(t, mierrors.IsInvalidArgument(err))
	_, err = ListProjects(ctx, c, types.ProjectListOptions{CustomerID: -3})
	assert.True(t, mierrors.IsInvalidArgument(err))
	_, err = ListUsers(ctx, c, types.UserListOptions{ListOptions: types.ListOptions{Limit: 1, Page: -1}})
	assert.True(t, mierrors.IsInvalidArgument(err))
	assert.Empty(t, sb.seen())
}

func TestSearch_ConcatenatesActiveAndArchived(t *testing.T) {
	t.Parallel()
	c, sb := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/projects.json":
			jsonReply(http.StatusOK, `[{"project":{"id":1,"name":"Web"}},{"project":{"id":2,"name":"Webshop"}}]`)(w, r)
		case "/projects/archived.json":
			jsonReply(http.StatusOK, `[{"project":{"id":2,"name":"Webshop"}}]`)(w, r)
		default:
			http.NotFound(w, r)
		}
	})
	got, err := SearchProjects(context.Background(), c, "Web")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{1, 2, 2}, []int64{got[0].ID, got[1].ID, got[2].ID})
	for _, r := range sb.seen() {
		assert.Equal(t, "name=Web", r.Query)
	}
}

func TestSearch_TermTooShort(t *testing.T) {
	t.Parallel()
	c, sb := newStub(t, nil)
	ctx := context.Background()
	_, err := SearchCustomers(ctx, c, "a")
	assert.True(t, mierrors.IsInvalidArgument(err))
	_, err = SearchProjects(ctx, c, "")
	assert.True(t, mierrors.IsInvalidArgument(err))
	_, err = SearchServices(ctx, c, "x")
	assert.True(t, mierrors.IsInvalidArgument(err))
	_, err = SearchUsers(ctx, c, "j", "")
	assert.True(t, mierrors.IsInvalidArgument(err))
	assert.Empty(t, sb.seen())
}

func TestSearchUsers_QueriesUsers(t *testing.T) {
	t.Parallel()
	c, sb := newStub(t, jsonReply(http.StatusOK, `[{"user":{"id":3,"name":"Jane","email":"jane@example.com"}}]`))
	got, err := SearchUsers(context.Background(), c, "", "jane@example.com")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	reqs := sb.seen()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/users.json", reqs[0].Path)
	assert.Equal(t, "/users/archived.json", reqs[1].Path)
}

func TestGet_ResourceSpecificNotFound(t *testing.T) {
	t.Parallel()
	c, _ := newStub(t, jsonReply(http.StatusNotFound, `{"error":"Record not found"}`))
	ctx := context.Background()

	_, err := GetCustomer(ctx, c, 1)
	assert.ErrorIs(t, err, mierrors.ErrCustomerNotFound)
	_, err = GetProject(ctx, c, 1)
	assert.ErrorIs(t, err, mierrors.ErrProjectNotFound)
	_, err = GetService(ctx, c, 1)
	assert.ErrorIs(t, err, mierrors.ErrServiceNotFound)
	_, err = GetUser(ctx, c, 1)
	assert.ErrorIs(t, err, mierrors.ErrUserNotFound)
	assert.NotErrorIs(t, err, mierrors.ErrCustomerNotFound)
	assert.Equal(t, 404, mierrors.StatusCode(err))
}

func TestGetService(t *testing.T) {
	t.Parallel()
	c, sb := newStub(t, jsonReply(http.StatusOK, `{"service":{"id":12,"name":"Consulting","billable":true,"hourly_rate":9000}}`))
	s, err := GetService(context.Background(), c, 12)
	require.NoError(t, err)
	assert.True(t, s.Billable)
	assert.Equal(t, int64(9000), s.HourlyRate)
	assert.Equal(t, "/services/12.json", sb.seen()[0].Path)
}

func TestCreateCustomer(t *testing.T) {
	t.Parallel()
	c, sb := newStub(t, jsonReply(http.StatusCreated, `{"customer":{"id":9,"name":"ACME","archived":false}}`))
	cu, err := CreateCustomer(context.Background(), c, "ACME", types.Params{"archived": false, "hourly_rate": 5000})
	require.NoError(t, err)
	assert.Equal(t, int64(9), cu.ID)

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(sb.seen()[0].Body), &body))
	assert.Equal(t, "false", body["customer"]["archived"])
	assert.Equal(t, "ACME", body["customer"]["name"])
	assert.Equal(t, float64(5000), body["customer"]["hourly_rate"])
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()
	c, sb := newStub(t, nil)
	ctx := context.Background()

	_, err := CreateCustomer(ctx, c, "", nil)
	assert.EqualError(t, err, "Name: you must provide a valid name for the customer got: ")
	_, err = CreateProject(ctx, c, "Relaunch", types.Params{"budget_type": "hours"})
	assert.True(t, mierrors.IsInvalidArgument(err))
	_, err = CreateService(ctx, c, "Ops", types.Params{"billable": "perhaps"})
	assert.True(t, mierrors.IsInvalidArgument(err))
	assert.Empty(t, sb.seen())
}

func TestUpdate_EmptyNameRejected(t *testing.T) {
	t.Parallel()
	c, sb := newStub(t, nil)
	ctx := context.Background()
	assert.True(t, mierrors.IsInvalidArgument(UpdateCustomer(ctx, c, 1, types.Params{"name": ""})))
	assert.True(t, mierrors.IsInvalidArgument(UpdateProject(ctx, c, 1, types.Params{"name": ""})))
	assert.True(t, mierrors.IsInvalidArgument(UpdateService(ctx, c, 1, types.Params{"name": ""})))
	assert.True(t, mierrors.IsInvalidArgument(UpdateService(ctx, c, -1, nil)))
	assert.Empty(t, sb.seen())
}

func TestUpdateProject(t *testing.T) {
	t.Parallel()
	c, sb := newStub(t, jsonReply(http.StatusOK, ""))
	require.NoError(t, UpdateProject(context.Background(), c, 5, types.Params{"budget": 600, "archived": true}))
	req := sb.seen()[0]
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/projects/5.json", req.Path)
	assert.JSONEq(t, `{"project":{"budget":600,"archived":"true"}}`, req.Body)
}

func TestDeleteService_NotFound(t *testing.T) {
	t.Parallel()
	c, _ := newStub(t, jsonReply(http.StatusNotFound, `{}`))
	err := DeleteService(context.Background(), c, 8)
	assert.ErrorIs(t, err, mierrors.ErrServiceNotFound)
	assert.EqualError(t, err, "service: Cannot find entry: 8")
}

func TestDeleteCustomer_ConflictPropagates(t *testing.T) {
	t.Parallel()
	c, _ := newStub(t, jsonReply(http.StatusUnprocessableEntity, `{"error":"Customer has projects"}`))
	err := DeleteCustomer(context.Background(), c, 8)
	var rt *mierrors.RuntimeAPIError
	require.ErrorAs(t, err, &rt)
	assert.Equal(t, 422, rt.Code)
	assert.Equal(t, map[string]any{"error": "Customer has projects"}, rt.ErrorData())
}

func TestAccountAndMyself(t *testing.T) {
	t.Parallel()
	c, _ := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/account.json":
			jsonReply(http.StatusOK, `{"account":{"id":1,"name":"acme","title":"ACME GmbH","currency":"EUR"}}`)(w, r)
		case "/myself.json":
			jsonReply(http.StatusOK, `{"user":{"id":3,"name":"Jane","role":"admin"}}`)(w, r)
		}
	})
	a, err := GetAccount(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "EUR", a.Currency)

	u, err := GetMyself(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Role)
}

func TestAccount_Forbidden(t *testing.T) {
	t.Parallel()
	c, _ := newStub(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid api key", http.StatusForbidden)
	})
	_, err := GetAccount(context.Background(), c)
	assert.Equal(t, mierrors.CodeAuthentication, mierrors.StatusCode(err))
}
