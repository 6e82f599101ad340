package layout

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		outputDir    string
		modelPackage string
		schema       string
		want         string
	}{
		{
			name:         "dotted package nests directories",
			outputDir:    "out",
			modelPackage: "banking.account.model",
			schema:       "Account",
			want:         filepath.Join("out", "banking", "account", "model", "account.go"),
		},
		{
			name:         "multi word schema becomes snake case",
			outputDir:    "out",
			modelPackage: "model",
			schema:       "AccountHolder",
			want:         filepath.Join("out", "model", "account_holder.go"),
		},
		{
			name:         "empty package roots at output dir",
			outputDir:    "generated",
			modelPackage: "",
			schema:       "Customer",
			want:         filepath.Join("generated", "customer.go"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.outputDir, tt.modelPackage, tt.schema))
		})
	}
}

func TestResolve_IsDeterministic(t *testing.T) {
	a := Resolve("out", "a.b", "Account")
	b := Resolve("out", "a.b", "Account")
	assert.Equal(t, a, b)
}
