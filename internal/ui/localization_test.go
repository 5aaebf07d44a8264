package ui

import "testing"

func TestLocalization_Defaults(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}
	if l.GetText(KeyAppTitle) != "QuickText" {
		t.Errorf("Unexpected title %q", l.GetText(KeyAppTitle))
	}
	if l.GetText("missing_key") != "missing_key" {
		t.Error("Unknown keys should fall back to the key itself")
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Fatalf("Expected ru, got %s", l.GetCurrentLanguage())
	}
	if l.GetText(KeySettings) != "Настройки" {
		t.Errorf("Unexpected translation %q", l.GetText(KeySettings))
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_AllKeysTranslated(t *testing.T) {
	l := NewLocalization()

	for code := range l.GetAvailableLanguages() {
		if len(l.texts[code]) != len(l.texts["en"]) {
			t.Errorf("Language %s has %d texts, English has %d", code, len(l.texts[code]), len(l.texts["en"]))
		}
		for key := range l.texts["en"] {
			if _, ok := l.texts[code][key]; !ok {
				t.Errorf("Language %s is missing %s", code, key)
			}
		}
	}
}
