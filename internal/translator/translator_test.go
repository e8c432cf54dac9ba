package translator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslator_Localize(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)

	require.Equal(t, "Lỗi hệ thống", tr.Localize("", "systemError", nil))
	require.Equal(t, "System error", tr.Localize("en-US,en;q=0.9", "systemError", nil))
	require.Equal(t, "Lỗi hệ thống", tr.Localize("fr", "systemError", nil))
}

func TestTranslator_TemplateData(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)

	msg := tr.Localize(LanguageEn, "remindersSent", map[string]any{"Sent": 2, "Failed": 1})
	require.Equal(t, "Sent 2 reminders, 1 failed", msg)
}

func TestTranslator_UnknownMessage(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)

	require.Equal(t, "noSuchMessage", tr.Localize(LanguageEn, "noSuchMessage", nil))
}
