package bytesconv

import (
	"bytes"
	"testing"
)

func TestStringToBytes(t *testing.T) {
	for _, s := range []string{"", "psyxml", "<Input foo=\"bar\"/>", "中文"} {
		if !bytes.Equal([]byte(s), StringToBytes(s)) {
			t.Fatalf("StringToBytes(%q) not equal to []byte conversion", s)
		}
	}
}

func TestBytesToString(t *testing.T) {
	for _, b := range [][]byte{nil, []byte("psyxml"), []byte("<doc/>")} {
		if string(b) != BytesToString(b) {
			t.Fatalf("BytesToString(%q) not equal to string conversion", b)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	s := "application/xml; charset=utf-8"
	if got := BytesToString(StringToBytes(s)); got != s {
		t.Fatalf("round trip mismatch: %q", got)
	}
}
