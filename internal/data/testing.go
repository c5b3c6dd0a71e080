package data

// MustDefaultCatalog parses the embedded default catalog, panicking on
// configuration errors. Intended for cross-package test setup that needs
// real authored content; the embedded document is itself covered by
// loader tests.
func MustDefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}
