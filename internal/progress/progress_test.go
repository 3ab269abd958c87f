package progress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarNonTerminalLogsOnBoundaryCrossings(t *testing.T) {
	var buf bytes.Buffer
	bar := New(&buf, 10)

	for i := 0; i <= 10; i++ {
		bar.Update(i)
	}
	bar.Done()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.NotEmpty(t, lines)
	assert.Contains(t, buf.String(), "100%")
}

func TestBarZeroTotalIsNoop(t *testing.T) {
	var buf bytes.Buffer
	bar := New(&buf, 0)
	bar.Update(0)
	assert.Empty(t, buf.String())
}
