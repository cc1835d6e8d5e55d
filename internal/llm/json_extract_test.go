package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
		wantErr  bool
	}{
		{
			name:     "json code block",
			response: "Here is the result:\n```json\n{\"destination\": \"Paris, France\"}\n```",
			want:     `{"destination": "Paris, France"}`,
		},
		{
			name:     "untagged code block",
			response: "```\n{\"budget\": \"$2000\"}\n```",
			want:     `{"budget": "$2000"}`,
		},
		{
			name:     "raw json with surrounding prose",
			response: "Sure! {\"trip_type\": \"vacation\"} Let me know if you need more.",
			want:     `{"trip_type": "vacation"}`,
		},
		{
			name:     "nested objects",
			response: `{"a": {"b": {"c": 1}}, "d": [1, 2]}`,
			want:     `{"a": {"b": {"c": 1}}, "d": [1, 2]}`,
		},
		{
			name:     "braces inside strings",
			response: `{"note": "use {curly} braces"}`,
			want:     `{"note": "use {curly} braces"}`,
		},
		{
			name:     "array response",
			response: "The list:\n[\"beaches\", \"museums\"]",
			want:     `["beaches", "museums"]`,
		},
		{
			name:     "skips non-json code block",
			response: "```python\nprint('hi')\n```\n{\"ok\": true}",
			want:     `{"ok": true}`,
		},
		{
			name:     "no json at all",
			response: "I could not extract any trip details from that.",
			wantErr:  true,
		},
		{
			name:     "unbalanced braces",
			response: `{"destination": "Paris"`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.response)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, ErrResponseParseFailed, errCodeOf(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
