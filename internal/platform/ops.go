package platform

import (
	"github.com/aretw0/notegen/pkg/adapters/table"
	"github.com/aretw0/notegen/pkg/core"
)

// Init resolves the table source for uri.
// An injected source wins; otherwise the reader comes from the explicit
// format or the URI extension.
func Init(uri string, opts ...Option) (core.TableSource, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initSource(uri, o)
}

func initSource(uri string, o *options) (core.TableSource, error) {
	if o.source != nil {
		return o.source, nil
	}

	if uri == "" {
		uri = table.DefaultURI
	}

	reader := o.reader
	if reader == nil {
		var err error
		reader, err = table.ReaderFor(uri, o.format, o.tableIndex)
		if err != nil {
			return nil, err
		}
	}

	return table.NewSource(uri, reader, o.logger), nil
}
