// Package container wires core findata-mcp services using go.uber.org/dig.
package container

import (
	"go.uber.org/dig"

	"github.com/CinderZhang/financialdatasets-docs/internal/config"
	"github.com/CinderZhang/financialdatasets-docs/internal/fdapi"
	"github.com/CinderZhang/financialdatasets-docs/internal/mcp"
	"github.com/CinderZhang/financialdatasets-docs/internal/tools"
)

const (
	serverName    = "findata-mcp"
	serverVersion = "0.1.0"
)

// Container holds the resolved core service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	client     *fdapi.Client
	registry   *tools.Registry
	dispatcher *tools.Dispatcher
	server     *mcp.Server
}

func (c *Container) Client() *fdapi.Client         { return c.client }
func (c *Container) Registry() *tools.Registry     { return c.registry }
func (c *Container) Dispatcher() *tools.Dispatcher { return c.dispatcher }
func (c *Container) Server() *mcp.Server           { return c.server }

// New builds and wires all core services from cfg. The config must already
// be resolved; construction performs no validation of its own.
func New(cfg *config.Config) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(newClient); err != nil {
		return nil, err
	}
	if err := d.Provide(newToolRegistry); err != nil {
		return nil, err
	}
	if err := d.Provide(newDispatcher); err != nil {
		return nil, err
	}
	if err := d.Provide(newServer); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		client *fdapi.Client,
		registry *tools.Registry,
		dispatcher *tools.Dispatcher,
		server *mcp.Server,
	) {
		result = &Container{
			client:     client,
			registry:   registry,
			dispatcher: dispatcher,
			server:     server,
		}
	})
	return result, err
}

func newClient(cfg *config.Config) *fdapi.Client {
	return fdapi.NewClient(cfg.API.APIKey, cfg.API.BaseURL, cfg.Timeout())
}

// newToolRegistry registers every tool the server advertises. Registration
// order is catalog order.
func newToolRegistry(client *fdapi.Client) *tools.Registry {
	return tools.NewRegistryBuilder().
		WithTool(tools.NewStockPriceTool(client)).
		WithTool(tools.NewFinancialStatementsTool(client)).
		WithTool(tools.NewSearchStocksTool(client)).
		WithTool(tools.NewEarningsPressReleasesTool(client)).
		WithTool(tools.NewFinancialMetricsTool(client)).
		WithTool(tools.NewInstitutionalOwnershipTool(client)).
		WithTool(tools.NewCompanyFactsTool(client)).
		WithTool(tools.NewCompanyNewsTool(client)).
		Build()
}

func newDispatcher(registry *tools.Registry) *tools.Dispatcher {
	return tools.NewDispatcher(registry)
}

func newServer(dispatcher *tools.Dispatcher) *mcp.Server {
	return mcp.NewServer(serverName, serverVersion, dispatcher)
}
