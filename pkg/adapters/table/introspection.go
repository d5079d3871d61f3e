package table

import (
	"github.com/aretw0/introspection"

	"github.com/aretw0/notegen/pkg/core"
)

var _ introspection.Component = (*Source)(nil)
var _ core.TableSource = (*Source)(nil)
