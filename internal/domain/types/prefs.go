package types

// Preferences are the user's persisted defaults.
type Preferences struct {
	APIURL string `json:"api_url,omitempty"`
	Book   BookID `json:"book,omitempty"`
	Lang   string `json:"lang,omitempty"`
}
