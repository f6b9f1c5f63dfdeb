package models

// Artifact is a generated template read back from disk.
type Artifact struct {
	// Path is the workbook file or CSV directory that was read.
	Path string `json:"path"`
	// Format is "workbook" or "delimited-text".
	Format string `json:"format"`
	// Sheets are kept in file order.
	Sheets []SheetGrid `json:"sheets"`
}

// Sheet returns the sheet with the given name.
func (a *Artifact) Sheet(name string) (*SheetGrid, bool) {
	for i := range a.Sheets {
		if a.Sheets[i].Name == name {
			return &a.Sheets[i], true
		}
	}
	return nil, false
}
