package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Asha Rao", (&User{Username: "asha", FullName: "Asha Rao"}).DisplayName())
	assert.Equal(t, "asha", (&User{Username: "asha"}).DisplayName())
}
