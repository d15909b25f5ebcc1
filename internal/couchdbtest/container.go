// Package couchdbtest starts a disposable CouchDB instance for
// integration tests that need a real server behind cloudantv1's
// ClientService instead of cloudantv1test's scripted mock.
package couchdbtest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image       = "couchdb:3.3"
	adminUser   = "admin"
	adminPass   = "testpass"
	exposedPort = "5984/tcp"
)

// Container represents a running CouchDB testcontainer.
type Container struct {
	container testcontainers.Container
	BaseURL   string
	Username  string
	Password  string
}

// Run starts a CouchDB container and waits until its HTTP API answers.
func Run(ctx context.Context) (*Container, error) {
	req := testcontainers.ContainerRequest{
		Image:        image,
		ExposedPorts: []string{exposedPort},
		Env: map[string]string{
			"COUCHDB_USER":     adminUser,
			"COUCHDB_PASSWORD": adminPass,
		},
		WaitingFor: wait.ForHTTP("/").WithPort(exposedPort).WithStartupTimeout(60 * time.Second),
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start CouchDB container: %w", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		c.Terminate(ctx)
		return nil, fmt.Errorf("failed to resolve container host: %w", err)
	}
	port, err := c.MappedPort(ctx, exposedPort)
	if err != nil {
		c.Terminate(ctx)
		return nil, fmt.Errorf("failed to resolve mapped port: %w", err)
	}

	baseURL := fmt.Sprintf("http://%s:%s", host, port.Port())
	cc := &Container{container: c, BaseURL: baseURL, Username: adminUser, Password: adminPass}

	if err := cc.ping(ctx); err != nil {
		c.Terminate(ctx)
		return nil, err
	}
	return cc, nil
}

// ping confirms the server is answering authenticated requests before
// handing the container back to the caller.
func (c *Container) ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/_up", nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.Username, c.Password)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach CouchDB: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("CouchDB not ready, status %d", resp.StatusCode)
	}
	return nil
}

// Terminate stops and removes the container.
func (c *Container) Terminate(ctx context.Context) error {
	if c.container != nil {
		return c.container.Terminate(ctx)
	}
	return nil
}
