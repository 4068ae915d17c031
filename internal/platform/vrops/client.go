// Package vrops provides a minimal client for the internal CASA
// administration API of a vRealize Operations appliance.
package vrops

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrPasswordAlreadySet is returned by SetInitialAdminPassword when the
// appliance reports that the initial admin password was set on an earlier
// run. Callers treat this as already converged.
var ErrPasswordAlreadySet = errors.New("initial admin password already set")

// Client is a minimal CASA API client for first-boot appliance configuration.
//
// The appliance ships with a self-signed certificate, so certificate
// validation is disabled when insecure is requested (the default for
// freshly deployed appliances).
type Client struct {
	baseURL    string
	host       string
	username   string
	password   string
	httpClient *http.Client
}

// TimeServer is one NTP server entry as the CASA API represents it.
type TimeServer struct {
	Address string `json:"address"`
}

type ntpConfig struct {
	TimeServers []TimeServer `json:"time_servers"`
}

type adminPassword struct {
	Password string `json:"password"`
}

type casaError struct {
	ErrorMessageKey string `json:"error_message_key"`
}

type roleStatus struct {
	ConfigurationRunning bool `json:"configurationRunning"`
}

type clusterInfo struct {
	ClusterName string `json:"cluster_name"`
}

type adminRoleRequest struct {
	SliceAddress string   `json:"slice_address"`
	AdminSlice   string   `json:"admin_slice"`
	IsHAEnabled  bool     `json:"is_ha_enabled"`
	UserID       string   `json:"user_id"`
	Password     string   `json:"password"`
	SliceRoles   []string `json:"slice_roles"`
}

// NewClient creates a CASA API client for the given appliance host.
func NewClient(host, username, password string, insecure bool) *Client {
	httpClient := &http.Client{}
	if insecure {
		httpClient.Transport = &http.Transport{
			// #nosec G402 -- the appliance presents a self-signed certificate
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return &Client{
		baseURL:    "https://" + host,
		host:       host,
		username:   username,
		password:   password,
		httpClient: httpClient,
	}
}

// Host returns the appliance host the client talks to.
func (c *Client) Host() string {
	return c.host
}

// Ready checks that the appliance API answers at all. It performs an
// unauthenticated GET against the appliance root and expects a 200.
func (c *Client) Ready(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/", nil, false)
	if err != nil {
		return err
	}

	status, body, err := c.do(req)
	if err != nil {
		return fmt.Errorf("appliance ready check: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("appliance not ready (status %d): %s", status, body)
	}
	return nil
}

// GetNTPServers returns the NTP server addresses currently configured on
// the appliance cluster.
func (c *Client) GetNTPServers(ctx context.Context) ([]string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/casa/sysadmin/cluster/ntp", nil, true)
	if err != nil {
		return nil, err
	}

	status, body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("get NTP config: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("get NTP config (status %d): %s", status, body)
	}

	var cfg ntpConfig
	if err := json.Unmarshal(body, &cfg); err != nil {
		return nil, fmt.Errorf("parse NTP config: %w", err)
	}

	servers := make([]string, 0, len(cfg.TimeServers))
	for _, ts := range cfg.TimeServers {
		servers = append(servers, ts.Address)
	}
	return servers, nil
}

// SetNTPServers pushes the given NTP server list to the appliance cluster.
func (c *Client) SetNTPServers(ctx context.Context, servers []string) error {
	cfg := ntpConfig{TimeServers: make([]TimeServer, 0, len(servers))}
	for _, s := range servers {
		cfg.TimeServers = append(cfg.TimeServers, TimeServer{Address: s})
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/casa/sysadmin/cluster/ntp", cfg, true)
	if err != nil {
		return err
	}

	status, body, err := c.do(req)
	if err != nil {
		return fmt.Errorf("set NTP servers: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("set NTP servers (status %d): %s", status, body)
	}
	return nil
}

// SetInitialAdminPassword sets the first-boot admin password. The call is
// unauthenticated; the appliance only accepts it once. A repeat call yields
// a 500 with the "already set" error key, which is surfaced as
// ErrPasswordAlreadySet so callers can treat it as converged.
func (c *Client) SetInitialAdminPassword(ctx context.Context, password string) error {
	req, err := c.newRequest(ctx, http.MethodPut, "/casa/security/adminpassword/initial",
		adminPassword{Password: password}, false)
	if err != nil {
		return err
	}

	status, body, err := c.do(req)
	if err != nil {
		return fmt.Errorf("set initial admin password: %w", err)
	}

	switch status {
	case http.StatusOK:
		return nil
	case http.StatusInternalServerError:
		var ce casaError
		if err := json.Unmarshal(body, &ce); err == nil &&
			ce.ErrorMessageKey == "security.initial_password_already_set" {
			return ErrPasswordAlreadySet
		}
		return fmt.Errorf("set initial admin password (status %d): %s", status, body)
	default:
		return fmt.Errorf("set initial admin password (status %d): %s", status, body)
	}
}

// AdminRoleStatus reports whether an admin role configuration is currently
// running on the appliance slice.
func (c *Client) AdminRoleStatus(ctx context.Context) (bool, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/casa/deployment/slice/role/status", nil, true)
	if err != nil {
		return false, err
	}

	status, body, err := c.do(req)
	if err != nil {
		return false, fmt.Errorf("get admin role status: %w", err)
	}
	if status != http.StatusOK {
		return false, fmt.Errorf("get admin role status (status %d): %s", status, body)
	}

	var rs roleStatus
	if err := json.Unmarshal(body, &rs); err != nil {
		return false, fmt.Errorf("parse admin role status: %w", err)
	}
	return rs.ConfigurationRunning, nil
}

// SetAdminRole promotes the appliance slice to the ADMIN/DATA/UI roles.
// The appliance answers 202 Accepted; some builds answer a nonstandard 209,
// which is tolerated.
func (c *Client) SetAdminRole(ctx context.Context) error {
	body := []adminRoleRequest{{
		SliceAddress: c.host,
		AdminSlice:   c.host,
		IsHAEnabled:  true,
		UserID:       c.username,
		Password:     c.password,
		SliceRoles:   []string{"ADMIN", "DATA", "UI"},
	}}

	req, err := c.newRequest(ctx, http.MethodPost, "/casa/deployment/slice/role", body, true)
	if err != nil {
		return err
	}

	status, respBody, err := c.do(req)
	if err != nil {
		return fmt.Errorf("set admin role: %w", err)
	}
	if status != http.StatusAccepted && status != 209 {
		return fmt.Errorf("set admin role (status %d): %s", status, respBody)
	}
	return nil
}

// GetClusterName returns the configured appliance cluster name.
func (c *Client) GetClusterName(ctx context.Context) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/casa/sysadmin/cluster", nil, true)
	if err != nil {
		return "", err
	}

	status, body, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("get cluster name: %w", err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("get cluster name (status %d): %s", status, body)
	}

	var ci clusterInfo
	if err := json.Unmarshal(body, &ci); err != nil {
		return "", fmt.Errorf("parse cluster info: %w", err)
	}
	return ci.ClusterName, nil
}

// SetClusterName names the appliance cluster.
func (c *Client) SetClusterName(ctx context.Context, name string) error {
	req, err := c.newRequest(ctx, http.MethodPut, "/casa/sysadmin/cluster",
		clusterInfo{ClusterName: name}, true)
	if err != nil {
		return err
	}

	status, body, err := c.do(req)
	if err != nil {
		return fmt.Errorf("set cluster name: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("set cluster name (status %d): %s", status, body)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any, authed bool) (*http.Request, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if authed {
		req.SetBasicAuth(c.username, c.password)
	}
	return req, nil
}

func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, body, nil
}
