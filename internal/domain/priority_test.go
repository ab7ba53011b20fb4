package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{input: "", want: PriorityMedium},
		{input: "  ", want: PriorityMedium},
		{input: "high", want: PriorityHigh},
		{input: "HIGH", want: PriorityHigh},
		{input: "h", want: PriorityHigh},
		{input: "medium", want: PriorityMedium},
		{input: "low", want: PriorityLow},
		{input: " Low ", want: PriorityLow},
		{input: "alta", want: PriorityHigh},
		{input: "média", want: PriorityMedium},
		{input: "baixa", want: PriorityLow},
		{input: "urgent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPriority)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriority_IsValid(t *testing.T) {
	for _, p := range AllPriorities() {
		assert.True(t, p.IsValid(), p)
	}
	assert.False(t, Priority("alta").IsValid())
	assert.False(t, Priority("").IsValid())
}

func TestPriority_Icon(t *testing.T) {
	assert.Equal(t, "🔴", PriorityHigh.Icon())
	assert.Equal(t, "🟡", PriorityMedium.Icon())
	assert.Equal(t, "🟢", PriorityLow.Icon())
	assert.Equal(t, "🟡", Priority("média").Icon())
	assert.Equal(t, "⚪", Priority("whenever").Icon())
}
