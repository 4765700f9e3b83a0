package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "padded", input: "09:00", want: "09:00"},
		{name: "unpadded hour is normalized", input: "9:30", want: "09:30"},
		{name: "late evening", input: "23:59", want: "23:59"},
		{name: "out of range", input: "24:00", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("09:45").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 9*60+45, m)

	_, err = TimeString("xx").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("17:00").IsAfter("17:00"))
	assert.False(t, TimeString("09:00").IsAfter("17:00"))
	assert.False(t, TimeString("garbage").IsAfter("00:00"))
}
