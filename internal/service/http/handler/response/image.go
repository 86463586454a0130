package response

type Image struct {
	Base64Data string `json:"base64Data"`
}
