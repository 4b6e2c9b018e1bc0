package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Request
		want Request
	}{
		{"valid request untouched", Request{Page: 2, Size: 10}, Request{Page: 2, Size: 10}},
		{"negative page clamped", Request{Page: -3, Size: 10}, Request{Page: 0, Size: 10}},
		{"zero size defaulted", Request{Page: 0, Size: 0}, Request{Page: 0, Size: DefaultSize}},
		{"negative size defaulted", Request{Page: 0, Size: -1}, Request{Page: 0, Size: DefaultSize}},
		{"oversized defaulted", Request{Page: 0, Size: MaxSize + 1}, Request{Page: 0, Size: DefaultSize}},
		{"max size kept", Request{Page: 0, Size: MaxSize}, Request{Page: 0, Size: MaxSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestLimitOffset(t *testing.T) {
	r := Request{Page: 3, Size: 25}
	assert.Equal(t, 25, r.Limit())
	assert.Equal(t, 75, r.Offset())

	assert.Equal(t, 0, Request{Page: 0, Size: 10}.Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, Page[int]{Total: 0}.TotalPages(10))
	assert.Equal(t, 1, Page[int]{Total: 10}.TotalPages(10))
	assert.Equal(t, 2, Page[int]{Total: 11}.TotalPages(10))
	assert.Equal(t, 0, Page[int]{Total: 5}.TotalPages(0))
}

func TestFromQuery(t *testing.T) {
	t.Run("parses and normalizes", func(t *testing.T) {
		r := FromQuery("2", "50", "title", "true")
		assert.Equal(t, Request{Page: 2, Size: 50, Sort: "title", Desc: true}, r)
	})

	t.Run("garbage input normalized", func(t *testing.T) {
		r := FromQuery("abc", "-5", "", "")
		assert.Equal(t, Request{Page: 0, Size: DefaultSize}, r)
	})
}
