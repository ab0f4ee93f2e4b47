// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package clientsets

import (
	"context"
	"net/http"
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/config"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/errors"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/log"
	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
)

var backendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "dashboard_backend_requests_total",
	Help: "Requests sent to the compute REST API, by controller and outcome",
}, []string{"controller", "outcome"})

func init() {
	prometheus.MustRegister(backendRequests)
}

// Client talks to the compute REST API. It is safe for concurrent use.
type Client struct {
	client  *resty.Client
	baseURL string
}

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	Debug      bool
}

func ConfigFrom(api config.APIConfig) *Config {
	return &Config{
		BaseURL:    api.GetBaseURL(),
		Timeout:    api.GetTimeout(),
		RetryCount: api.RetryCount,
		Debug:      api.Debug,
	}
}

func NewClient(cfg *Config) *Client {
	if cfg == nil {
		cfg = ConfigFrom(config.APIConfig{})
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if cfg.Debug {
		client.SetDebug(true)
	}

	return &Client{
		client:  client,
		baseURL: cfg.BaseURL,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetAuthToken attaches a bearer token to every following request.
func (c *Client) SetAuthToken(token string) *Client {
	c.client.SetAuthToken(token)
	return c
}

func (c *Client) Pools() *PoolsController         { return &PoolsController{c: c} }
func (c *Client) Dashboard() *DashboardController { return &DashboardController{c: c} }
func (c *Client) Devices() *DeviceController      { return &DeviceController{c: c} }
func (c *Client) Topology() *TopologyController   { return &TopologyController{c: c} }
func (c *Client) Bandwidth() *BandwidthController { return &BandwidthController{c: c} }
func (c *Client) Usage() *UsageController         { return &UsageController{c: c} }
func (c *Client) Workflows() *WorkflowsController { return &WorkflowsController{c: c} }

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.client.R().SetContext(ctx)
}

// check maps transport failures and non-2xx statuses to CodeRemoteServiceError.
func check(controller, op string, resp *resty.Response, err error) error {
	if err != nil {
		backendRequests.WithLabelValues(controller, "transport_error").Inc()
		log.Warnf("%s %s failed: %v", controller, op, err)
		return errors.WrapError(err, controller+" "+op+" failed", errors.CodeRemoteServiceError)
	}
	if resp.IsError() || resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		backendRequests.WithLabelValues(controller, "status_error").Inc()
		log.Warnf("%s %s returned %s", controller, op, resp.Status())
		return errors.NewError().
			WithCode(errors.CodeRemoteServiceError).
			WithMessagef("%s %s returned %d: %s", controller, op, resp.StatusCode(), resp.String())
	}
	backendRequests.WithLabelValues(controller, "ok").Inc()
	return nil
}

// Version fetches the backend build information.
func (c *Client) Version(ctx context.Context) (*Version, error) {
	var result Version
	resp, err := c.request(ctx).
		SetResult(&result).
		Get("/api/v1/version")
	if err := check("version", "get", resp, err); err != nil {
		return nil, err
	}
	return &result, nil
}
