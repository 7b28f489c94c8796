package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var _ Calculator = SHA256{}

func TestCalculateRaw(t *testing.T) {
	c := New()

	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", c.CalculateRaw(nil))
	assert.Len(t, c.CalculateRaw([]byte("<article/>")), 64)
	assert.NotEqual(t, c.CalculateRaw([]byte("<article/>\n")), c.CalculateRaw([]byte("<article/>\r\n")))
}

func TestCalculateNormalized(t *testing.T) {
	c := New()
	unix := []byte("<article>\n<front/>\n</article>\n")

	tests := []struct {
		name    string
		content string
	}{
		{"windows line endings", "<article>\r\n<front/>\r\n</article>\r\n"},
		{"old mac line endings", "<article>\r<front/>\r</article>\r"},
		{"byte order mark", "\xef\xbb\xbf<article>\n<front/>\n</article>\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, c.CalculateNormalized(unix), c.CalculateNormalized([]byte(tt.content)))
		})
	}

	assert.NotEqual(t, c.CalculateNormalized(unix), c.CalculateNormalized([]byte("<article/>")))
}
