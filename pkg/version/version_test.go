// pkg/version/version_test.go

package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionLinkerOverride(t *testing.T) {
	defer func(r, d string) { revision, revisionDate = r, d }(revision, revisionDate)
	revision, revisionDate = "abc1234", "2024-05-01"
	assert.Equal(t, "0.1-dev (2024-05-01 abc1234)", Version())
}

func TestVersionPrefix(t *testing.T) {
	assert.True(t, strings.HasPrefix(Version(), version))
}
