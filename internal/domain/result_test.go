package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSendOutcome(t *testing.T) {
	tests := []struct {
		name           string
		result         SendResult
		wantStatus     string
		wantMessage    string
		wantSuccessful []string
		wantFailed     []string
	}{
		{
			name:           "all providers succeed",
			result:         SendResult{{"slack", true}},
			wantStatus:     SendStatusSuccess,
			wantMessage:    "Notification sent successfully to 1 provider(s)",
			wantSuccessful: []string{"slack"},
			wantFailed:     []string{},
		},
		{
			name:           "partial success",
			result:         SendResult{{"slack", true}, {"email", false}},
			wantStatus:     SendStatusPartialSuccess,
			wantMessage:    "Notification sent successfully to 1 provider(s)",
			wantSuccessful: []string{"slack"},
			wantFailed:     []string{"email"},
		},
		{
			name:           "order follows the result",
			result:         SendResult{{"ntfy", false}, {"teams", true}, {"discord", false}, {"slack", true}},
			wantStatus:     SendStatusPartialSuccess,
			wantMessage:    "Notification sent successfully to 2 provider(s)",
			wantSuccessful: []string{"teams", "slack"},
			wantFailed:     []string{"ntfy", "discord"},
		},
		{
			name:           "everything failed",
			result:         SendResult{{"slack", false}},
			wantStatus:     SendStatusPartialSuccess,
			wantMessage:    "Notification sent successfully to 0 provider(s)",
			wantSuccessful: []string{},
			wantFailed:     []string{"slack"},
		},
		{
			name:           "empty result",
			result:         SendResult{},
			wantStatus:     SendStatusSuccess,
			wantMessage:    "Notification sent successfully to 0 provider(s)",
			wantSuccessful: []string{},
			wantFailed:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := NewSendOutcome(tt.result)
			assert.Equal(t, tt.wantStatus, outcome.Status)
			assert.Equal(t, tt.wantMessage, outcome.Message)
			assert.Equal(t, tt.wantSuccessful, outcome.Successful)
			assert.Equal(t, tt.wantFailed, outcome.Failed)
		})
	}
}
