package config

// Encoding is the body encoding used for requests to the remote service.
type Encoding string

const (
	// EncodingForm sends application/x-www-form-urlencoded bodies.
	EncodingForm Encoding = "form"
	// EncodingMultipart sends multipart/form-data bodies, as browsers with
	// FormData support do.
	EncodingMultipart Encoding = "multipart"
	// EncodingJSON sends a JSON object.
	EncodingJSON Encoding = "json"
)

// IsValid checks if the encoding is supported.
func (e Encoding) IsValid() bool {
	switch e {
	case EncodingForm, EncodingMultipart, EncodingJSON:
		return true
	default:
		return false
	}
}
