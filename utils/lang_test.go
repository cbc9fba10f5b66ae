package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizeWithoutBundle(t *testing.T) {
	bundle = nil
	assert.Equal(t, "fallback", Localize("zh-TW", "welcome", "fallback"))
}

func TestLocalize(t *testing.T) {
	require.NoError(t, InitI18NBundle("../i18n"))
	defer func() { bundle = nil }()

	assert.Equal(t, "Welcome to this awesome API", Localize("", "welcome", "fallback"))
	assert.Equal(t, "Welcome to this awesome API", Localize("en-US,en;q=0.9", "welcome", "fallback"))
	assert.Equal(t, "歡迎使用這個超棒的 API", Localize("zh-TW", "welcome", "fallback"))
	assert.Equal(t, "參數無效", Localize("zh-TW,zh;q=0.9", "error_1010", "invalid parameters"))
}

func TestLocalizeUnknownID(t *testing.T) {
	require.NoError(t, InitI18NBundle("../i18n"))
	defer func() { bundle = nil }()

	assert.Equal(t, "fallback", Localize("en", "no_such_message", "fallback"))
}

func TestInitI18NBundleMissingDir(t *testing.T) {
	assert.Error(t, InitI18NBundle("./no-such-dir"))
	assert.Nil(t, bundle)
}
