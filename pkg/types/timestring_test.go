package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    TimeString
		wantErr bool
	}{
		{name: "zero padded", in: "09:30", want: "09:30"},
		{name: "single digit hour is normalized", in: "9:05", want: "09:05"},
		{name: "surrounding spaces", in: " 17:00 ", want: "17:00"},
		{name: "hour out of range", in: "24:00", wantErr: true},
		{name: "minute out of range", in: "10:60", wantErr: true},
		{name: "garbage", in: "ten", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "seconds are not accepted", in: "10:00:00", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewTimeStringFromString(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Parallel()

	got, err := TimeString("16:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("17:15"), got)

	_, err = TimeString("23:50").AddMinutes(15)
	require.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("bad").AddMinutes(15)
	require.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Compare(t *testing.T) {
	t.Parallel()

	assert.True(t, TimeString("09:45").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:15"))
}

func TestTimeString_On(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	date := time.Date(2026, time.March, 2, 13, 14, 15, 16, loc)

	got, err := TimeString("09:15").On(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 2, 9, 15, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())

	_, err = TimeString("9h").On(date)
	require.Error(t, err)
}
