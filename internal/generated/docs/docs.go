// Package docs registers the API document with swag so that echo-swagger can
// serve it under /swagger/doc.json.
package docs

import (
	"encoding/json"
	"sync"

	"freight/internal/generated/servers"

	"github.com/swaggo/swag"
)

// InstanceName is the swag instance echo-swagger reads by default.
var InstanceName = swag.Name

type document struct {
	once sync.Once
	doc  string
}

// ReadDoc renders the embedded OpenAPI document as JSON.
func (d *document) ReadDoc() string {
	d.once.Do(func() {
		spec, err := servers.GetSwagger()
		if err != nil {
			d.doc = "{}"
			return
		}
		raw, err := json.Marshal(spec)
		if err != nil {
			d.doc = "{}"
			return
		}
		d.doc = string(raw)
	})
	return d.doc
}

func init() {
	swag.Register(InstanceName, &document{})
}
