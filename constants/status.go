package constants

// DocStatus is the canonical status for rows in documents.
type DocStatus string

// Stable values (store these exact strings in DB).
const (
	DocStatusReceived   DocStatus = "RECEIVED"   // upload accepted, not yet processed
	DocStatusOCROK      DocStatus = "OCR_OK"     // stage 1 completed (text extracted)
	DocStatusClassified DocStatus = "CLASSIFIED" // stage 2 completed (type assigned)
	DocStatusFailed     DocStatus = "FAILED"     // terminal failure
)

// DocStatuses holds the allowed values for the status field on documents.
var DocStatuses = []string{
	string(DocStatusReceived),
	string(DocStatusOCROK),
	string(DocStatusClassified),
	string(DocStatusFailed),
}
