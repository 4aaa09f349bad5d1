package dnd5e

// ExportEnvelope is the portable form of a character. The character
// inside has its id, status and campaign stripped.
type ExportEnvelope struct {
	Version   string         `json:"version"`
	ExportID  string         `json:"export_id"`
	Timestamp int64          `json:"timestamp"`
	Character *Character     `json:"character"`
	Metadata  ExportMetadata `json:"metadata"`
}

// ExportMetadata records how the character looked when exported
type ExportMetadata struct {
	ValidationResult *ValidationResult `json:"validation_result"`
	ExportVersion    string            `json:"export_version"`
}
