package handler

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diaryof/diary-server/internal/apierrors"
	"github.com/diaryof/diary-server/internal/model"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2026-05-04", time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC), false},
		{"2026-05-04T23:30:00Z", time.Date(2026, 5, 4, 23, 30, 0, 0, time.UTC), false},
		{" 2026-05-04T23:30:00.123+02:00 ", time.Date(2026, 5, 4, 21, 30, 0, 123000000, time.UTC), false},
		{"04.05.2026", time.Time{}, true},
		{"", time.Time{}, true},
	}

	for _, tt := range tests {
		got, err := parseDate(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.True(t, tt.want.Equal(got), tt.in)
	}
}

func TestParseTaskUpdate(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		body string
		want model.TaskUpdate
	}{
		{"empty body", "", model.TaskUpdate{}},
		{"empty object", "{}", model.TaskUpdate{}},
		{"set and clear", `{"title":"a","description":null}`, model.TaskUpdate{
			Title:       model.Some("a"),
			Description: model.Null[string](),
		}},
		{"timestamp", `{"timestamp":"2026-05-04T08:00:00Z"}`, model.TaskUpdate{Timestamp: model.Some(ts)}},
		{"null timestamp", `{"timestamp":null}`, model.TaskUpdate{Timestamp: model.Null[time.Time]()}},
		{"unknown fields ignored", `{"dayId":"x","sentiment":"positive"}`, model.TaskUpdate{Sentiment: model.Some("positive")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseTaskUpdate([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTaskUpdate_Errors(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`[1]`, `{"title":1}`, `{"timestamp":"soon"}`, `{"timestamp":7}`} {
		_, err := parseTaskUpdate([]byte(body))
		assert.True(t, apierrors.IsKind(err, apierrors.KindBadRequest), body)
	}
}

func TestRequestValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     validatable
		wantErr bool
	}{
		{"register ok", registerRequest{Email: "a@b.co", Password: "123456"}, false},
		{"register long password", registerRequest{Email: "a@b.co", Password: string(make([]byte, 129))}, true},
		{"otp five digits", otpRequest{Email: "a@b.co", OTP: "12345"}, true},
		{"otp ok", otpRequest{Email: "a@b.co", OTP: "012345"}, false},
		{"reset token not hex", resetPasswordRequest{Email: "a@b.co", NewPassword: "123456", ResetToken: "zz"}, true},
		{"reset without token", resetPasswordRequest{Email: "a@b.co", NewPassword: "123456"}, false},
		{"profile long name", updateProfileRequest{Name: strPtr(strings.Repeat("a", 101))}, true},
		{"profile nothing", updateProfileRequest{}, false},
		{"day no date", createDayRequest{}, false},
		{"task empty", createTaskRequest{}, false},
		{"task bad timestamp", createTaskRequest{Timestamp: strPtr("later")}, true},
	}

	for _, tt := range tests {
		err := tt.req.Validate()
		if tt.wantErr {
			assert.Error(t, err, tt.name)
		} else {
			assert.NoError(t, err, tt.name)
		}
	}
}
