package boundary

import "testing"

func TestSkipBOM(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  int
	}{
		{"utf-8", []byte{0xEF, 0xBB, 0xBF, 'a'}, 3},
		{"utf-16 be", []byte{0xFE, 0xFF, 0x00, 'a'}, 2},
		{"utf-16 le", []byte{0xFF, 0xFE, 'a', 0x00}, 2},
		{"utf-32 le", []byte{0xFF, 0xFE, 0x00, 0x00, 'a'}, 4},
		{"utf-32 be", []byte{0x00, 0x00, 0xFE, 0xFF, 'a'}, 4},
		{"utf-16 le exact", []byte{0xFF, 0xFE}, 2},
		{"utf-8 bom only", []byte{0xEF, 0xBB, 0xBF}, 3},
		{"truncated utf-8", []byte{0xEF, 0xBB}, 0},
		{"truncated utf-32 be", []byte{0x00, 0x00, 0xFE}, 0},
		{"ff fe 00 then data", []byte{0xFF, 0xFE, 0x00, 'a'}, 2},
		{"plain ascii", []byte("a,b\n"), 0},
		{"nul start", []byte{0x00, 'a'}, 0},
		{"single byte", []byte{0xEF}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SkipBOM(tt.input); got != tt.want {
				t.Errorf("SkipBOM(% x) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
