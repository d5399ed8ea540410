package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeJob_Framing(t *testing.T) {
	data := EncodeJob("line one\nline two", CodePagePC866)

	// Initialize and code page selection come first
	require.True(t, bytes.HasPrefix(data, []byte{ESC, '@', ESC, 't', CodePagePC866}))

	// Feed and partial cut come last
	require.True(t, bytes.HasSuffix(data, []byte{LF, LF, LF, GS, 'V', 0x01}))

	require.Contains(t, string(data), "line one\n")
	require.Contains(t, string(data), "line two\n")
}

func TestEncodeJob_CyrillicPassthrough(t *testing.T) {
	// Bytes are passed through untouched; transcoding to the printer's code
	// page is the caller's concern
	data := EncodeJob("СУМА\t20.00", CodePagePC866)
	require.Contains(t, string(data), "СУМА\t20.00")
}

func TestNewPrinterFromConfig(t *testing.T) {
	p, err := NewPrinterFromConfig("none", "", "")
	require.NoError(t, err)
	require.False(t, p.IsConnected())
	require.NoError(t, p.Print([]byte("anything")))

	_, err = NewPrinterFromConfig("usb", "", "")
	require.Error(t, err)

	_, err = NewPrinterFromConfig("network", "", "")
	require.Error(t, err)

	_, err = NewPrinterFromConfig("laser", "", "")
	require.Error(t, err)

	p, err = NewPrinterFromConfig("usb", "/dev/usb/lp0", "")
	require.NoError(t, err)
	require.NotNil(t, p)

	p, err = NewPrinterFromConfig("network", "192.168.1.50:9100", "")
	require.NoError(t, err)
	require.NotNil(t, p)
}
