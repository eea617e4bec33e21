package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserIDFromSubject(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		want    uint
		wantErr bool
	}{
		{name: "valid", subject: "ustadgee.user.42.notify", want: 42},
		{name: "zero id", subject: "ustadgee.user.0.notify", wantErr: true},
		{name: "non numeric id", subject: "ustadgee.user.abc.notify", wantErr: true},
		{name: "too few parts", subject: "ustadgee.user.notify", wantErr: true},
		{name: "too many parts", subject: "ustadgee.user.42.notify.extra", wantErr: true},
		{name: "empty", subject: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseUserIDFromSubject(tt.subject)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
