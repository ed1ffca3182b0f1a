package hrmsclient

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/workforcelab/hrms-backend-go/internal/domain/employee"
)

// ErrStaleResponse marks a list response that arrived after the filter
// state had already moved on. Callers drop it instead of rendering.
var ErrStaleResponse = errors.New("stale response discarded")

// listGuard remembers, per endpoint, which filter state was requested
// most recently. A response is only delivered if its filter state is
// still the current one; a user who typed a new search term mid-flight
// never sees results for the old term.
type listGuard struct {
	mu      sync.Mutex
	current map[string]string
}

func newListGuard() *listGuard {
	return &listGuard{current: make(map[string]string)}
}

func (g *listGuard) begin(endpoint, key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current[endpoint] = key
}

func (g *listGuard) stillCurrent(endpoint, key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current[endpoint] == key
}

// EmployeeListParams is the filter state for the employee list.
type EmployeeListParams struct {
	Search     string
	Department string
	Branch     string
	Status     string
	Page       int
	Limit      int
}

func (p EmployeeListParams) queryMap() map[string]string {
	m := map[string]string{
		"search":     p.Search,
		"department": p.Department,
		"branch":     p.Branch,
		"status":     p.Status,
	}
	if p.Page > 0 {
		m["page"] = strconv.Itoa(p.Page)
	}
	if p.Limit > 0 {
		m["limit"] = strconv.Itoa(p.Limit)
	}
	return m
}

func encodeQuery(params map[string]string) string {
	values := url.Values{}
	for k, v := range params {
		if v != "" {
			values.Set(k, v)
		}
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

type EmployeeList struct {
	Employees []employee.Employee
	Meta      *Meta
}

// Employees groups employee operations with their list cache.
type EmployeesAPI struct {
	client *Client
	cache  *ListCache
	guard  *listGuard
}

func (c *Client) Employees() *EmployeesAPI {
	return &EmployeesAPI{
		client: c,
		cache:  NewListCache(30 * time.Second),
		guard:  newListGuard(),
	}
}

const employeesEndpoint = "/api/v1/employees"

// List fetches the employee list. Results are cached briefly per
// filter state, and a response for a superseded filter state returns
// ErrStaleResponse instead of data.
func (a *EmployeesAPI) List(ctx context.Context, params EmployeeListParams) (*EmployeeList, error) {
	key := CacheKey(employeesEndpoint, params.queryMap())
	a.guard.begin(employeesEndpoint, key)

	if cached, ok := a.cache.Get(key); ok {
		return cached.(*EmployeeList), nil
	}

	var employees []employee.Employee
	meta, err := a.client.get(ctx, employeesEndpoint+encodeQuery(params.queryMap()), &employees)
	if err != nil {
		return nil, err
	}
	if !a.guard.stillCurrent(employeesEndpoint, key) {
		return nil, ErrStaleResponse
	}

	list := &EmployeeList{Employees: employees, Meta: meta}
	a.cache.Set(key, list)
	return list, nil
}

func (a *EmployeesAPI) Get(ctx context.Context, id string) (*employee.Employee, error) {
	var e employee.Employee
	if _, err := a.client.get(ctx, employeesEndpoint+"/"+id, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (a *EmployeesAPI) Create(ctx context.Context, req employee.CreateEmployeeRequest) (*employee.Employee, error) {
	var e employee.Employee
	if _, err := a.client.post(ctx, employeesEndpoint, req, &e); err != nil {
		return nil, err
	}
	a.cache.Invalidate(employeesEndpoint)
	return &e, nil
}

func (a *EmployeesAPI) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (*employee.Employee, error) {
	var e employee.Employee
	if _, err := a.client.put(ctx, employeesEndpoint+"/"+req.ID, req, &e); err != nil {
		return nil, err
	}
	a.cache.Invalidate(employeesEndpoint)
	return &e, nil
}

func (a *EmployeesAPI) Delete(ctx context.Context, id string) error {
	if err := a.client.delete(ctx, employeesEndpoint+"/"+id); err != nil {
		return err
	}
	a.cache.Invalidate(employeesEndpoint)
	return nil
}
