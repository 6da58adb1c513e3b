package domain

import "fmt"

// Send outcome statuses
const (
	SendStatusSuccess        = "success"
	SendStatusPartialSuccess = "partial_success"
)

// ProviderOutcome is the delivery result for one provider
type ProviderOutcome struct {
	Provider string `json:"provider"`
	OK       bool   `json:"ok"`
}

// SendResult holds per-provider outcomes in the order the notifier produced them
type SendResult []ProviderOutcome

// AllSucceeded reports whether no provider failed. An empty result counts as success.
func (r SendResult) AllSucceeded() bool {
	for _, o := range r {
		if !o.OK {
			return false
		}
	}
	return true
}

// Successful returns the providers that accepted the message
func (r SendResult) Successful() []string {
	return r.filter(true)
}

// Failed returns the providers that did not accept the message
func (r SendResult) Failed() []string {
	return r.filter(false)
}

func (r SendResult) filter(ok bool) []string {
	names := make([]string, 0, len(r))
	for _, o := range r {
		if o.OK == ok {
			names = append(names, o.Provider)
		}
	}
	return names
}

// SendOutcome is the response body of a send request
type SendOutcome struct {
	Status     string   `json:"status"`
	Message    string   `json:"message"`
	Successful []string `json:"successful"`
	Failed     []string `json:"failed"`
}

// NewSendOutcome summarises a send result
func NewSendOutcome(r SendResult) SendOutcome {
	status := SendStatusSuccess
	if !r.AllSucceeded() {
		status = SendStatusPartialSuccess
	}

	successful := r.Successful()
	return SendOutcome{
		Status:     status,
		Message:    fmt.Sprintf("Notification sent successfully to %d provider(s)", len(successful)),
		Successful: successful,
		Failed:     r.Failed(),
	}
}
