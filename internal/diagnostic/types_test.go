package diagnostic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_IsError(t *testing.T) {
	assert.False(t, Result{Code: CodeAugmented}.IsError())
	assert.False(t, Result{Code: CodeSkipped}.IsError())
	assert.True(t, Result{Code: CodeFileNotFound}.IsError())
	assert.True(t, Result{Code: CodeInvalidDescriptor}.IsError())
	assert.True(t, Result{Code: CodeUnparsableSource}.IsError())
	assert.True(t, Result{Code: CodeNoPrimaryType}.IsError())
	assert.True(t, Result{Code: CodeSerializationFailure}.IsError())
}

func TestHasErrors(t *testing.T) {
	ok := []Result{{Code: CodeAugmented}, {Code: CodeSkipped}}
	assert.False(t, HasErrors(ok))

	mixed := append(ok, Result{Code: CodeFileNotFound})
	assert.True(t, HasErrors(mixed))
	assert.Equal(t, 1, CountErrors(mixed))
}

func TestSummary(t *testing.T) {
	results := []Result{
		{Schema: "Account", Code: CodeAugmented, Added: 3},
		{Schema: "Customer", Code: CodeSkipped, SkippedExisting: []string{"account"}},
		{Schema: "Missing", Code: CodeFileNotFound, Err: errors.New("no such file")},
	}

	out := Summary(results)

	assert.Contains(t, out, "Account")
	assert.Contains(t, out, "augmented")
	assert.Contains(t, out, "(+3 members)")
	assert.Contains(t, out, "(existing: account)")
	assert.Contains(t, out, "no such file")
	assert.Contains(t, out, "3 schemas processed, 1 failed")
}
