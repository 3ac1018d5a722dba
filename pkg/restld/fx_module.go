package restld

import (
	"go.uber.org/fx"

	"github.com/variantkit/ldlink/pkg/annotator"
)

// FXModule is an fx module that provides the REST LD client as the
// annotator's LDService. Do not install alongside variationdb.FXModule:
// both bind annotator.LDService.
var FXModule = fx.Module("restld",
	fx.Provide(
		NewClientWithDI,
		fx.Annotate(
			ProvideLDService,
			fx.As(new(annotator.LDService)),
		),
	),
)

// ProvideLDService exposes the concrete client as the LDService interface.
func ProvideLDService(c *Client) annotator.LDService {
	return c
}

// ClientParams groups the dependencies needed to create a Client via
// dependency injection. Tracer is optional.
type ClientParams struct {
	fx.In

	Config Config
	Logger Logger

	Tracer annotator.Tracer `optional:"true"`
}

// NewClientWithDI creates the Client from injected dependencies.
func NewClientWithDI(params ClientParams) (*Client, error) {
	return NewClient(params.Config, params.Logger, params.Tracer)
}
