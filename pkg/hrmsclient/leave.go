package hrmsclient

import (
	"context"
	"strconv"

	"github.com/workforcelab/hrms-backend-go/internal/domain/leave"
)

const leaveEndpoint = "/api/v1/leave"

type LeaveListParams struct {
	Employee string
	Status   string
	Year     int
	Page     int
	Limit    int
}

func (p LeaveListParams) queryMap() map[string]string {
	m := map[string]string{
		"employee": p.Employee,
		"status":   p.Status,
	}
	if p.Year > 0 {
		m["year"] = strconv.Itoa(p.Year)
	}
	if p.Page > 0 {
		m["page"] = strconv.Itoa(p.Page)
	}
	if p.Limit > 0 {
		m["limit"] = strconv.Itoa(p.Limit)
	}
	return m
}

type LeaveList struct {
	Applications []leave.Application
	Meta         *Meta
}

type LeaveAPI struct {
	client *Client
	guard  *listGuard
}

func (c *Client) Leave() *LeaveAPI {
	return &LeaveAPI{client: c, guard: newListGuard()}
}

func (a *LeaveAPI) Apply(ctx context.Context, req leave.ApplyRequest) (*leave.Application, error) {
	var app leave.Application
	if _, err := a.client.post(ctx, leaveEndpoint, req, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (a *LeaveAPI) List(ctx context.Context, params LeaveListParams) (*LeaveList, error) {
	key := CacheKey(leaveEndpoint, params.queryMap())
	a.guard.begin(leaveEndpoint, key)

	var applications []leave.Application
	meta, err := a.client.get(ctx, leaveEndpoint+encodeQuery(params.queryMap()), &applications)
	if err != nil {
		return nil, err
	}
	if !a.guard.stillCurrent(leaveEndpoint, key) {
		return nil, ErrStaleResponse
	}
	return &LeaveList{Applications: applications, Meta: meta}, nil
}

func (a *LeaveAPI) Get(ctx context.Context, id string) (*leave.Application, error) {
	var app leave.Application
	if _, err := a.client.get(ctx, leaveEndpoint+"/"+id, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (a *LeaveAPI) Balance(ctx context.Context, employeeID string, year int) (*leave.Balance, error) {
	path := leaveEndpoint + "/balance/" + employeeID
	if year > 0 {
		path += "?year=" + strconv.Itoa(year)
	}
	var balance leave.Balance
	if _, err := a.client.get(ctx, path, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

func (a *LeaveAPI) SetAllocation(ctx context.Context, req leave.SetAllocationRequest) error {
	_, err := a.client.put(ctx, leaveEndpoint+"/allocation", req, nil)
	return err
}

func (a *LeaveAPI) Decide(ctx context.Context, id string, approve bool, rejectionReason string) (*leave.Application, error) {
	body := map[string]any{"approve": approve}
	if rejectionReason != "" {
		body["rejectionReason"] = rejectionReason
	}
	var app leave.Application
	if _, err := a.client.post(ctx, leaveEndpoint+"/"+id+"/decision", body, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (a *LeaveAPI) BulkDecide(ctx context.Context, ids []string, approve bool, rejectionReason string) (*leave.BulkResult, error) {
	body := map[string]any{"ids": ids, "approve": approve}
	if rejectionReason != "" {
		body["rejectionReason"] = rejectionReason
	}
	var result leave.BulkResult
	if _, err := a.client.post(ctx, leaveEndpoint+"/bulk-decision", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
