package store_test

import (
	"testing"

	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/stretchr/testify/require"
)

func TestLookupValidate(t *testing.T) {
	tests := []struct {
		name   string
		lookup store.Lookup
		ok     bool
	}{
		{"email only", store.Lookup{Email: "a@b.co"}, true},
		{"id only", store.Lookup{ID: 1}, true},
		{"neither", store.Lookup{}, false},
		{"both", store.Lookup{Email: "a@b.co", ID: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lookup.Validate()
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, store.ErrInvalidLookup)
			}
		})
	}
}
