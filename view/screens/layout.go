package screens

import "encoding/json"

// csrfHeaders returns the hx-headers value that sends csrfToken with every htmx request.
func csrfHeaders(csrfToken string) string {
	headers, err := json.Marshal(map[string]string{"X-CSRF-Token": csrfToken})
	if err != nil {
		return "{}"
	}
	return string(headers)
}
