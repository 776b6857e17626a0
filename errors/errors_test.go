package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Equal(t, "wrapped: original", wrapped.Error())
	assert.True(t, Is(wrapped, original))
}

func TestWithHint(t *testing.T) {
	err := WithHint(New("bad digit"), "use digits 0-9 only")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "use digits 0-9 only", hints[0])
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Empty(t, UserMessage(nil))
}

func TestInvalidRequest(t *testing.T) {
	err := NewInvalidRequestError("flag %s is malformed", "--dob")

	assert.True(t, IsInvalidRequestError(err))
	assert.True(t, IsInvalidRequestError(Wrap(err, "generate")))
	assert.Equal(t, "flag --dob is malformed", err.Error())
	assert.False(t, IsInvalidRequestError(New("other")))
	assert.False(t, IsInvalidRequestError(nil))
}

func TestMarkKeepsBothIdentities(t *testing.T) {
	sentinel := New("sentinel")
	err := Mark(sentinel, ErrInvalidRequest)

	assert.True(t, Is(err, sentinel))
	assert.True(t, Is(err, ErrInvalidRequest))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "no hints",
			err:  New("boom"),
			want: "boom",
		},
		{
			name: "single hint",
			err:  WithHint(New("boom"), "try again"),
			want: "boom\n  hint: try again",
		},
		{
			name: "hints survive wrapping",
			err:  Wrap(WithHint(WithHint(New("boom"), "first"), "second"), "ctx"),
			want: "ctx: boom\n  hint: first\n  hint: second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func ExampleUserMessage() {
	err := WithHint(New("identifier must be 10 digits"), "check for a missing leading zero")
	fmt.Println(UserMessage(err))
	// Output:
	// identifier must be 10 digits
	//   hint: check for a missing leading zero
}
