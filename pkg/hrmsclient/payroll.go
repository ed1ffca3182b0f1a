package hrmsclient

import (
	"context"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/workforcelab/hrms-backend-go/internal/domain/payroll"
)

const payrollEndpoint = "/api/v1/payroll"

type PayrollAPI struct {
	client *Client
}

func (c *Client) Payroll() *PayrollAPI {
	return &PayrollAPI{client: c}
}

func (a *PayrollAPI) GetConfig(ctx context.Context) (*payroll.SalaryConfig, error) {
	var cfg payroll.SalaryConfig
	if _, err := a.client.get(ctx, payrollEndpoint+"/config", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (a *PayrollAPI) SaveConfig(ctx context.Context, req payroll.SaveConfigRequest) (*payroll.SalaryConfig, error) {
	var cfg payroll.SalaryConfig
	if _, err := a.client.put(ctx, payrollEndpoint+"/config", req, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Preview asks the server to compute one breakdown. For instant
// feedback while a form is being edited, use PreviewLocal instead and
// submit through this method.
func (a *PayrollAPI) Preview(ctx context.Context, input payroll.SalaryInput) (*payroll.Breakdown, error) {
	var breakdown payroll.Breakdown
	body := payroll.PreviewRequest{Input: input}
	if _, err := a.client.post(ctx, payrollEndpoint+"/preview", body, &breakdown); err != nil {
		return nil, err
	}
	return &breakdown, nil
}

func (a *PayrollAPI) Sheet(ctx context.Context, year int, month time.Month) (*payroll.Sheet, error) {
	var sheet payroll.Sheet
	path := payrollEndpoint + "/sheet?year=" + strconv.Itoa(year) + "&month=" + strconv.Itoa(int(month))
	if _, err := a.client.get(ctx, path, &sheet); err != nil {
		return nil, err
	}
	return &sheet, nil
}

// ExportSheet downloads the xlsx workbook. It bypasses the JSON
// envelope; the returned filename comes from Content-Disposition.
func (a *PayrollAPI) ExportSheet(ctx context.Context, year int, month time.Month) (data []byte, filename string, err error) {
	path := payrollEndpoint + "/sheet/export?year=" + strconv.Itoa(year) + "&month=" + strconv.Itoa(int(month))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.client.baseURL+path, nil)
	if err != nil {
		return nil, "", err
	}
	if token := a.client.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.client.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", &APIError{StatusCode: resp.StatusCode, Message: "export failed"}
	}

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		filename = params["filename"]
	}
	return data, filename, nil
}
