package model

// Format identifies the shape of a persisted document
type Format string

const (
	// FormatGrouped is the current shape: group -> name -> content
	FormatGrouped Format = "grouped"

	// FormatLegacy is the flat name -> content shape of early versions
	FormatLegacy Format = "legacy"

	// FormatDefault means no document was read and the default was used
	FormatDefault Format = "default"
)

// String returns the string representation of Format
func (f Format) String() string {
	return string(f)
}

// SaveStatus represents the outcome of a persistence attempt
type SaveStatus string

const (
	// SaveStatusSaved means the document was written to the primary path
	SaveStatusSaved SaveStatus = "Saved"

	// SaveStatusFallback means the primary write failed and the document
	// was written to the working directory instead
	SaveStatusFallback SaveStatus = "SavedToFallback"

	// SaveStatusFailed means neither location could be written
	SaveStatusFailed SaveStatus = "Failed"
)

// String returns the string representation of SaveStatus
func (s SaveStatus) String() string {
	return string(s)
}

// IsPersisted returns true if the document reached disk
func (s SaveStatus) IsPersisted() bool {
	return s == SaveStatusSaved || s == SaveStatusFallback
}
