package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain order text untouched",
			in:   "Mg Mg, 09123456789, 2 shirts @ 15000, Yangon",
			want: "Mg Mg, 09123456789, 2 shirts @ 15000, Yangon",
		},
		{
			name: "markup stripped",
			in:   "<script>alert(1)</script>Mg Mg, 1 bag (20000)",
			want: "alert(1) Mg Mg, 1 bag (20000)",
		},
		{
			name: "disallowed symbols dropped",
			in:   "Mg Mg; 2 shirts @ 15000 #urgent!",
			want: "Mg Mg 2 shirts @ 15000 urgent",
		},
		{
			name: "myanmar script preserved",
			in:   "မောင်မောင်, 09123456789",
			want: "မောင်မောင်, 09123456789",
		},
		{
			name: "empty stays empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitize_Truncates(t *testing.T) {
	out := Sanitize(strings.Repeat("a", 2*MaxInputLength))
	assert.Len(t, []rune(out), MaxInputLength)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate("Mg Mg, 09123456789, 2 shirts @ 15000"))

	err := Validate(strings.Repeat("a", MaxInputLength+1))
	require.Error(t, err)

	err = Validate("<b>order</b>")
	require.Error(t, err)
}
