package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/pfid/pkg/pfid"
)

func TestFormatInspect(t *testing.T) {
	t.Run("known id", func(t *testing.T) {
		out, err := formatInspect("04fq3yr4a03nqk8n008j4ct4ank7f24s")
		require.NoError(t, err)

		assert.Equal(t, strings.Join([]string{
			"text:       04fq3yr4a03nqk8n008j4ct4ank7f24s",
			"binary:     011f71fb0450075bcd1500112233445566778899",
			"timestamp:  1234567890000 (2009-02-13T23:31:30Z)",
			"partition:  123456789",
			"randomness: 00112233445566778899",
			"",
		}, "\n"), out)
	})

	t.Run("uppercase input canonicalizes", func(t *testing.T) {
		out, err := formatInspect("04FQ3YR4A03NQK8N008J4CT4ANK7F24S")
		require.NoError(t, err)
		assert.Contains(t, out, "text:       04fq3yr4a03nqk8n008j4ct4ank7f24s")
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := formatInspect("not a pfid")
		assert.ErrorIs(t, err, pfid.ErrInvalidTextInput)
	})
}
