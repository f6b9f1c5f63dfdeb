package writer

// Factory opens a workbook writer targeting path.
type Factory func(path string, opts ...Option) (Writer, error)

// Capability tells whether structured workbooks can be produced.
// The zero value is Unavailable.
type Capability struct {
	factory Factory
}

// Available returns a capability backed by factory.
func Available(factory Factory) Capability {
	return Capability{factory: factory}
}

// Unavailable returns a capability that cannot produce workbooks.
func Unavailable() Capability {
	return Capability{}
}

// Factory returns the workbook factory and whether it exists.
func (c Capability) Factory() (Factory, bool) {
	return c.factory, c.factory != nil
}

// Available reports whether workbooks can be produced.
func (c Capability) Available() bool {
	return c.factory != nil
}
