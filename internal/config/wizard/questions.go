package wizard

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/huh"
)

// runKeystoneGroup prompts for the Keystone endpoint and credentials.
func runKeystoneGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Keystone Auth URL").
				Description("The v3 identity endpoint, e.g. https://vip:5000/v3").
				Placeholder("https://vip:5000/v3").
				Value(&result.AuthURL).
				Validate(validateAuthURL),
			huh.NewInput().
				Title("Username").
				Description("User with rights to manage projects").
				Placeholder("admin").
				Value(&result.Username).
				Validate(required("username")),
			huh.NewInput().
				Title("Password").
				Description("Leave empty to supply via OS_PASSWORD at run time").
				EchoMode(huh.EchoModePassword).
				Value(&result.Password),
			huh.NewInput().
				Title("Scope Project").
				Description("Project the credentials are scoped to").
				Placeholder("admin").
				Value(&result.ScopeProject).
				Validate(required("scope project")),
		).Title("Keystone"),
	).RunWithContext(ctx)
}

// runProjectGroup prompts for the project to reconcile.
func runProjectGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Description("Name of the Keystone project to manage").
				Placeholder("demo").
				Value(&result.ProjectName).
				Validate(required("project name")),
		).Title("Project"),
	).RunWithContext(ctx)
}

// runVROpsGroup prompts for the appliance connection and bootstrap options.
func runVROpsGroup(ctx context.Context, result *Result) error {
	var ntpInput string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("vROPs Host").
				Description("Hostname or IP address of the appliance").
				Placeholder("10.0.0.5").
				Value(&result.VROpsHost).
				Validate(required("host")),
			huh.NewInput().
				Title("Admin Username").
				Placeholder("admin").
				Value(&result.VROpsUsername).
				Validate(required("username")),
			huh.NewInput().
				Title("Admin Password").
				Description("Leave empty to supply via VROPS_PASSWORD at run time").
				EchoMode(huh.EchoModePassword).
				Value(&result.VROpsPassword),
			huh.NewInput().
				Title("NTP Servers (Optional)").
				Description("Comma-separated NTP server addresses").
				Placeholder("ntp1.example.com, ntp2.example.com").
				Value(&ntpInput),
			huh.NewConfirm().
				Title("Name the cluster after its host?").
				Value(&result.SetClusterName),
		).Title("vROPs Appliance"),
	).RunWithContext(ctx)

	if err != nil {
		return err
	}

	result.NTPServers = parseServerList(ntpInput)
	return nil
}

// validateAuthURL checks the Keystone endpoint is a parseable http(s) URL.
func validateAuthURL(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("auth URL is required")
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return fmt.Errorf("not a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https")
	}
	return nil
}

// required returns a validator rejecting empty input.
func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// parseServerList splits a comma-separated server list, trimming
// whitespace and dropping empty entries.
func parseServerList(input string) []string {
	var servers []string
	for _, part := range strings.Split(input, ",") {
		if s := strings.TrimSpace(part); s != "" {
			servers = append(servers, s)
		}
	}
	return servers
}
