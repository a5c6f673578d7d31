package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/boxkeep/internal/domain"
)

func TestGuard_IsAuthorized(t *testing.T) {
	guard := NewGuard([]string{"123", " 456 ", ""})

	tests := []struct {
		name  string
		actor domain.OwnerID
		want  bool
	}{
		{name: "listed", actor: "123", want: true},
		{name: "trimmed entry", actor: "456", want: true},
		{name: "unlisted", actor: "789", want: false},
		{name: "empty actor", actor: "", want: false},
		{name: "prefix is not a match", actor: "12", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, guard.IsAuthorized(tt.actor))
		})
	}
	assert.Equal(t, 2, guard.Size())
}

func TestGuard_FailsClosed(t *testing.T) {
	assert.False(t, NewGuard(nil).IsAuthorized("123"))
	assert.False(t, NewGuard([]string{" ", ""}).IsAuthorized(""))

	var unloaded *Guard
	assert.False(t, unloaded.IsAuthorized("123"))
	assert.Equal(t, 0, unloaded.Size())
}

func TestParseAllowlist(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, ParseAllowlist("1, 2,,3 ,"))
	assert.Empty(t, ParseAllowlist(""))
	assert.Empty(t, ParseAllowlist(" , "))
}
