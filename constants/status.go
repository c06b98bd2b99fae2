package constants

// DraftStatus is the canonical status for rows in invoice_draft.
type DraftStatus string

// Stable values (store these exact strings in DB).
const (
	DraftStatusOpen      DraftStatus = "OPEN"      // being edited
	DraftStatusFinalized DraftStatus = "FINALIZED" // numbered and downloaded
)
