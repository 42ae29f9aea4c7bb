package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildInClause(t *testing.T) {
	tests := []struct {
		name       string
		values     []string
		start      int
		wantClause string
		wantArgs   []interface{}
	}{
		{
			name:       "empty",
			values:     nil,
			start:      1,
			wantClause: "",
			wantArgs:   nil,
		},
		{
			name:       "single value",
			values:     []string{"10.1/a"},
			start:      1,
			wantClause: "doi IN ($1)",
			wantArgs:   []interface{}{"10.1/a"},
		},
		{
			name:       "offset placeholders",
			values:     []string{"10.1/a", "10.1/b"},
			start:      3,
			wantClause: "doi IN ($3, $4)",
			wantArgs:   []interface{}{"10.1/a", "10.1/b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := BuildInClause("doi", tt.values, tt.start)
			assert.Equal(t, tt.wantClause, clause)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestUniqueNonEmpty(t *testing.T) {
	got := uniqueNonEmpty([]string{"a", "", "b", "a", "c", "b"})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
