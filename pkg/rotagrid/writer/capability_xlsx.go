//go:build !noxlsx

package writer

// DetectCapability reports the workbook capability compiled into this binary.
func DetectCapability() Capability {
	return Available(func(path string, opts ...Option) (Writer, error) {
		w, err := NewXLSX(path, opts...)
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}
