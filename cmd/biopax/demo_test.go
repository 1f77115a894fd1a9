package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDemoFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   demoFlags
		wantErr bool
	}{
		{name: "no flags", flags: demoFlags{}},
		{name: "output only", flags: demoFlags{output: "model.owl"}},
		{name: "save only", flags: demoFlags{save: "erk"}},
		{
			name:    "save and output together",
			flags:   demoFlags{output: "model.owl", save: "erk"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDemoFlags(tt.flags)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
