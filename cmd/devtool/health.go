package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultAPIURL   = "http://localhost:8080"
	slowProbeCutoff = time.Second
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Probe /healthz and /readyz of a running forge (default $API_URL)"
}

func (c *HealthCheckCommand) Run(args []string) error {
	base := os.Getenv("API_URL")
	if len(args) > 0 {
		base = args[0]
	}
	if base == "" {
		base = defaultAPIURL
	}
	base = strings.TrimRight(base, "/")

	PrintHeader(fmt.Sprintf("Health Check (%s)", base))

	client := &http.Client{Timeout: 5 * time.Second}
	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		if err := probe(client, base+path); err != nil {
			PrintError("%s failed: %v", path, err)
			return err
		}
		if d := time.Since(start); d > slowProbeCutoff {
			PrintWarning("%s slow response time (%v)", path, d)
		} else {
			PrintSuccess("%s passed (%v)", path, d)
		}
	}
	return nil
}

func probe(client *http.Client, url string) error {
	resp, err := client.Get(url) //nolint:noctx
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}
