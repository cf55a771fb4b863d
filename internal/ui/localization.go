package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyReset          = "reset"
	KeySettings       = "settings"
	KeyLanguage       = "language"
	KeyInsight        = "insight"
	KeyThreshold      = "compression_threshold"
	KeyRangeVariant   = "compression_range"
	KeyRangeFull      = "range_full"
	KeyRangeHalf      = "range_half"
	KeyStrategy       = "mapping_strategy"
	KeyStrategyHeight = "strategy_height"
	KeyStrategyScale  = "strategy_scale"
	KeyStrategyPin    = "strategy_pin"
	KeyHaptics        = "haptics"
	KeySave           = "save"
	KeyCancel         = "cancel"
	KeyClose          = "close"
	KeyAllDone        = "all_done"
	KeyListReset      = "list_reset"
	KeyInvalidValue   = "invalid_value"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "Crushlist",
		KeyReset:          "Reset",
		KeySettings:       "Settings",
		KeyLanguage:       "Language",
		KeyInsight:        "Insight",
		KeyThreshold:      "Completion Threshold",
		KeyRangeVariant:   "Compression Range",
		KeyRangeFull:      "Full card",
		KeyRangeHalf:      "Half card",
		KeyStrategy:       "Compression Style",
		KeyStrategyHeight: "Shrink height",
		KeyStrategyScale:  "Scale down",
		KeyStrategyPin:    "Pin to line",
		KeyHaptics:        "Haptic feedback",
		KeySave:           "Save",
		KeyCancel:         "Cancel",
		KeyClose:          "Close",
		KeyAllDone:        "All done — crush it again tomorrow",
		KeyListReset:      "Checklist reset",
		KeyInvalidValue:   "Invalid value",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "Crushlist",
		KeyReset:          "Сбросить",
		KeySettings:       "Настройки",
		KeyLanguage:       "Язык",
		KeyInsight:        "Подсказка",
		KeyThreshold:      "Порог завершения",
		KeyRangeVariant:   "Диапазон сжатия",
		KeyRangeFull:      "Вся карточка",
		KeyRangeHalf:      "Половина карточки",
		KeyStrategy:       "Стиль сжатия",
		KeyStrategyHeight: "Уменьшать высоту",
		KeyStrategyScale:  "Масштабировать",
		KeyStrategyPin:    "Прижать к линии",
		KeyHaptics:        "Тактильный отклик",
		KeySave:           "Сохранить",
		KeyCancel:         "Отмена",
		KeyClose:          "Закрыть",
		KeyAllDone:        "Все готово — повторите завтра",
		KeyListReset:      "Список сброшен",
		KeyInvalidValue:   "Неверное значение",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:       "Crushlist",
		KeyReset:          "Redefinir",
		KeySettings:       "Configurações",
		KeyLanguage:       "Idioma",
		KeyInsight:        "Dica",
		KeyThreshold:      "Limite de Conclusão",
		KeyRangeVariant:   "Faixa de Compressão",
		KeyRangeFull:      "Cartão inteiro",
		KeyRangeHalf:      "Meio cartão",
		KeyStrategy:       "Estilo de Compressão",
		KeyStrategyHeight: "Reduzir altura",
		KeyStrategyScale:  "Diminuir escala",
		KeyStrategyPin:    "Fixar na linha",
		KeyHaptics:        "Resposta tátil",
		KeySave:           "Salvar",
		KeyCancel:         "Cancelar",
		KeyClose:          "Fechar",
		KeyAllDone:        "Tudo pronto — repita amanhã",
		KeyListReset:      "Lista redefinida",
		KeyInvalidValue:   "Valor inválido",
	}
}
