//go:build noxlsx

package writer

// DetectCapability reports the workbook capability compiled into this binary.
// Binaries built with the noxlsx tag only produce CSV directories.
func DetectCapability() Capability {
	return Unavailable()
}
