package platform

import (
	"github.com/aretw0/notegen/pkg/adapters/table"
	"github.com/aretw0/notegen/pkg/core"
	"github.com/aretw0/notegen/pkg/render"
)

// New wires a generator for the table at uri.
//
//	svc, err := notegen.New("https://pages.mtu.edu/~suits/notefreqs.html", notegen.WithPackage("notes"))
//
// An empty uri means the default reference table.
func New(uri string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if uri == "" {
		uri = table.DefaultURI
	}

	src, err := initSource(uri, o)
	if err != nil {
		return nil, err
	}

	var renderOpts []render.Option
	if o.pkg != "" {
		renderOpts = append(renderOpts, render.WithPackage(o.pkg))
	}
	if o.typeName != "" {
		renderOpts = append(renderOpts, render.WithTypeName(o.typeName))
	}
	if o.generator != "" {
		renderOpts = append(renderOpts, render.WithGenerator(o.generator))
	}
	if o.source == nil {
		renderOpts = append(renderOpts, render.WithSource(uri))
	}

	svcOpts := []core.ServiceOption{core.WithServiceLogger(o.logger)}
	if len(o.include) > 0 {
		filter, err := NewIncludeFilter(o.include)
		if err != nil {
			return nil, err
		}
		svcOpts = append(svcOpts, core.WithFilter(filter))
	}

	return core.NewService(src, render.New(renderOpts...), svcOpts...), nil
}
