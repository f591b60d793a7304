package domain

const RecipientTypeManual = "manual"

type Recipient struct {
	Type      string `json:"type"`
	Email     Email  `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// Block marks where a recipient has to sign. Page is sent as a string.
type Block struct {
	Type           SignatureType `json:"type"`
	Page           string        `json:"page"`
	X              float64       `json:"x"`
	Y              float64       `json:"y"`
	RecipientEmail Email         `json:"recipientEmail"`
}

// EnvelopeRef holds the identifiers the e-signature platform assigned on upload.
type EnvelopeRef struct {
	EnvelopeUUID EnvelopeUUID
	DocumentUUID DocumentUUID
}
