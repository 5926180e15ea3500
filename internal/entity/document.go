package entity

// TextBlock is one recognized text region with an optional position.
// Position coordinates are provider-specific and only used for ordering
// heuristics, never for pixel-accurate layout.
type TextBlock struct {
	Text string   `json:"text"`
	X    *int     `json:"x,omitempty"`
	Y    *int     `json:"y,omitempty"`
	Conf *float64 `json:"confidence,omitempty"`
}

// RawDocument is the immutable input to one extraction run: the recognized
// full text plus the ordered block sequence the provider returned.
type RawDocument struct {
	Text     string      `json:"text"`
	Blocks   []TextBlock `json:"blocks,omitempty"`
	FileName string      `json:"file_name"`
	MimeType string      `json:"mime_type"`
}
