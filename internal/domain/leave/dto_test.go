package leave

import (
	"strings"
	"testing"

	"github.com/leavedesk/leave-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func TestSubmitLeaveRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       SubmitLeaveRequest
		wantField string
	}{
		{
			name: "valid",
			req:  SubmitLeaveRequest{StartDate: "2025-06-02", EndDate: "2025-06-06"},
		},
		{
			name: "inverted range passes validation",
			req:  SubmitLeaveRequest{StartDate: "2025-06-06", EndDate: "2025-06-02"},
		},
		{
			name:      "missing start",
			req:       SubmitLeaveRequest{EndDate: "2025-06-06"},
			wantField: "start_date",
		},
		{
			name:      "german date format",
			req:       SubmitLeaveRequest{StartDate: "02.06.2025", EndDate: "2025-06-06"},
			wantField: "start_date",
		},
		{
			name:      "impossible calendar date",
			req:       SubmitLeaveRequest{StartDate: "2025-02-30", EndDate: "2025-06-06"},
			wantField: "start_date",
		},
		{
			name:      "comment too long",
			req:       SubmitLeaveRequest{StartDate: "2025-06-02", EndDate: "2025-06-06", Comment: strings.Repeat("x", 501)},
			wantField: "comment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var errs validator.ValidationErrors
			assert.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tt.wantField)
		})
	}
}

func TestDecisionRequest_Validate(t *testing.T) {
	ok := DecisionRequest{ManagerComment: "approved, enjoy"}
	assert.NoError(t, ok.Validate())

	empty := DecisionRequest{}
	assert.NoError(t, empty.Validate())

	long := DecisionRequest{ManagerComment: strings.Repeat("x", 501)}
	assert.Error(t, long.Validate())
}
