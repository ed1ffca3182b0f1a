package hrmsclient

import (
	"context"
	"strconv"

	"github.com/workforcelab/hrms-backend-go/internal/domain/attendance"
)

const attendanceEndpoint = "/api/v1/attendance"

type AttendanceListParams struct {
	Employee string
	Status   string
	From     string
	To       string
	Page     int
	Limit    int
}

func (p AttendanceListParams) queryMap() map[string]string {
	m := map[string]string{
		"employee": p.Employee,
		"status":   p.Status,
		"from":     p.From,
		"to":       p.To,
	}
	if p.Page > 0 {
		m["page"] = strconv.Itoa(p.Page)
	}
	if p.Limit > 0 {
		m["limit"] = strconv.Itoa(p.Limit)
	}
	return m
}

type AttendanceList struct {
	Records []attendance.Record
	Meta    *Meta
}

type AttendanceAPI struct {
	client *Client
	guard  *listGuard
}

func (c *Client) Attendance() *AttendanceAPI {
	return &AttendanceAPI{client: c, guard: newListGuard()}
}

func (a *AttendanceAPI) CheckIn(ctx context.Context, req attendance.CheckInRequest) (*attendance.Record, error) {
	var rec attendance.Record
	if _, err := a.client.post(ctx, attendanceEndpoint+"/check-in", req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (a *AttendanceAPI) CheckOut(ctx context.Context, employeeID string) (*attendance.Record, error) {
	var rec attendance.Record
	body := map[string]string{"employeeId": employeeID}
	if _, err := a.client.post(ctx, attendanceEndpoint+"/check-out", body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (a *AttendanceAPI) List(ctx context.Context, params AttendanceListParams) (*AttendanceList, error) {
	key := CacheKey(attendanceEndpoint, params.queryMap())
	a.guard.begin(attendanceEndpoint, key)

	var records []attendance.Record
	meta, err := a.client.get(ctx, attendanceEndpoint+encodeQuery(params.queryMap()), &records)
	if err != nil {
		return nil, err
	}
	if !a.guard.stillCurrent(attendanceEndpoint, key) {
		return nil, ErrStaleResponse
	}
	return &AttendanceList{Records: records, Meta: meta}, nil
}

func (a *AttendanceAPI) Decide(ctx context.Context, id string, approve bool, remarks string) (*attendance.Record, error) {
	var rec attendance.Record
	body := map[string]any{"approve": approve, "remarks": remarks}
	if _, err := a.client.post(ctx, attendanceEndpoint+"/"+id+"/decision", body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (a *AttendanceAPI) BulkDecide(ctx context.Context, ids []string, approve bool, remarks string) (*attendance.BulkResult, error) {
	var result attendance.BulkResult
	body := map[string]any{"ids": ids, "approve": approve, "remarks": remarks}
	if _, err := a.client.post(ctx, attendanceEndpoint+"/bulk-decision", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// QRImageURL is the address a kiosk page points its <img> at.
func (a *AttendanceAPI) QRImageURL(token string, size int) string {
	u := a.client.baseURL + attendanceEndpoint + "/qr/" + token + "/image"
	if size > 0 {
		u += "?size=" + strconv.Itoa(size)
	}
	return u
}
