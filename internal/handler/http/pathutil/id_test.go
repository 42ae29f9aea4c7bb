package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "valid uuid", raw: "0b6f5e8e-3c1d-4f6a-9a2b-5d4e3c2b1a09", want: "0b6f5e8e-3c1d-4f6a-9a2b-5d4e3c2b1a09"},
		{name: "surrounding spaces", raw: " 0b6f5e8e-3c1d-4f6a-9a2b-5d4e3c2b1a09 ", want: "0b6f5e8e-3c1d-4f6a-9a2b-5d4e3c2b1a09"},
		{name: "numeric id", raw: "123", wantErr: ErrInvalidID},
		{name: "mongo object id", raw: "64b7f0c2e4b0a1a2b3c4d5e6", wantErr: ErrInvalidID},
		{name: "empty", raw: "", wantErr: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDOI(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain doi", raw: "10.1145/3368089.3409742", want: "10.1145/3368089.3409742"},
		{name: "literal percent kept", raw: "10.1/50%off", want: "10.1/50%off"},
		{name: "escape sequence not decoded twice", raw: "10.1/a%2Fb", want: "10.1/a%2Fb"},
		{name: "trimmed", raw: " 10.1/x ", want: "10.1/x"},
		{name: "empty", raw: "", wantErr: true},
		{name: "blank", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDOI(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDOI)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
