package catalog

import (
	"bytes"
	_ "embed"
	"io"
)

//go:embed plants.json
var defaultCatalog []byte

//go:embed schema.json
var catalogSchema []byte

// Default returns the built-in plant catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

func newSchemaReader() io.Reader {
	return bytes.NewReader(catalogSchema)
}
