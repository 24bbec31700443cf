package louis

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brailleworks/louis-go/internal/bindings"
)

func TestRemapError(t *testing.T) {
	other := errors.New("other")
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"not built", bindings.ErrNotBuilt, ErrNotBuilt},
		{"no version", bindings.ErrNoVersion, ErrNoVersion},
		{"wrapped no version", fmt.Errorf("lookup: %w", bindings.ErrNoVersion), ErrNoVersion},
		{"overflow", bindings.ErrOutputOverflow, errOutputOverflow},
		{"passthrough", other, other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemapError(tt.in))
		})
	}
}
