package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name      string
		alive     bool
		neighbors int
		want      bool
	}{
		{"live with none dies", true, 0, false},
		{"live with one dies", true, 1, false},
		{"live with two survives", true, 2, true},
		{"live with three survives", true, 3, true},
		{"live with four dies", true, 4, false},
		{"live with eight dies", true, 8, false},
		{"dead with two stays dead", false, 2, false},
		{"dead with three is born", false, 3, true},
		{"dead with four stays dead", false, 4, false},
		{"dead with eight stays dead", false, 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Next(tt.alive, tt.neighbors))
		})
	}
}

func TestNext_BirthOnlyOnThree(t *testing.T) {
	for n := 0; n <= 8; n++ {
		assert.Equal(t, n == 3, Next(false, n), "dead cell with %d neighbours", n)
	}
}
