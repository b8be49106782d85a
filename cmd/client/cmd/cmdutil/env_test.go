package cmdutil

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCmd(t *testing.T) {
	cmd := &cobra.Command{}

	_, err := FromCmd(cmd)
	assert.Error(t, err)

	cmd.SetContext(context.Background())
	_, err = FromCmd(cmd)
	assert.Error(t, err)

	env := &Env{Output: "json"}
	cmd.SetContext(WithEnv(context.Background(), env))
	got, err := FromCmd(cmd)
	require.NoError(t, err)
	assert.Same(t, env, got)
}

func TestParseID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{arg: "7", want: 7},
		{arg: "0", wantErr: true},
		{arg: "-1", wantErr: true},
		{arg: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := ParseID(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
