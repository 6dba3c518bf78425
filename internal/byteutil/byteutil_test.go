package byteutil

import "testing"

func TestDigest(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{name: "empty", data: nil, expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{name: "abc", data: []byte("abc"), expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}
	for _, test := range tests {
		if got := Digest(test.data); got != test.expected {
			t.Errorf("%s: Digest, got: %v, expected: %v", test.name, got, test.expected)
		}
	}
}

func TestBytesBufIsReset(t *testing.T) {
	buf := GetBytesBuf()
	buf.WriteString("payload")
	PutBytesBuf(buf)
	if buf.Len() != 0 {
		t.Errorf("buffer length after put, got: %d, expected: 0", buf.Len())
	}
}
