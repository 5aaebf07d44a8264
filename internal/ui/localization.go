package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyAppDescription      = "app_description"
	KeySearchPlaceholder   = "search_placeholder"
	KeySearchResults       = "search_results"
	KeySettings            = "settings"
	KeyLanguage            = "language"
	KeyCopied              = "copied"
	KeyManagePresets       = "manage_presets"
	KeyManageGroups        = "manage_groups"
	KeyGeneral             = "general"
	KeyAbout               = "about"
	KeyGroup               = "group"
	KeyName                = "name"
	KeyContent             = "content"
	KeyAdd                 = "add"
	KeyRename              = "rename"
	KeyDelete              = "delete"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeyCopy                = "copy"
	KeyEdit                = "edit"
	KeyAddPreset           = "add_preset"
	KeyRenamePreset        = "rename_preset"
	KeyDeletePreset        = "delete_preset"
	KeyConfirmDeletePreset = "confirm_delete_preset"
	KeyAddGroup            = "add_group"
	KeyRenameGroup         = "rename_group"
	KeyDeleteGroup         = "delete_group"
	KeyConfirmDeleteGroup  = "confirm_delete_group"
	KeyNothingSelected     = "nothing_selected"
	KeyHotkey              = "hotkey"
	KeyStartHidden         = "start_hidden"
	KeyCloseToTray         = "close_to_tray"
	KeyShowToasts          = "show_toasts"
	KeySettingsSaved       = "settings_saved"
	KeyShowHide            = "show_hide"
	KeyVersion             = "version"
	KeyDataFile            = "data_file"
	KeySavedToFallback     = "saved_to_fallback"
	KeyNoResults           = "no_results"
	KeyDragHint            = "drag_hint"
	KeyPresetSaved         = "preset_saved"
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

// SetLanguage sets the current language. "system" follows the OS locale when
// a translation for it exists.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

func systemLanguage() string {
	locale := strings.ToLower(string(lang.SystemLocale()))
	code, _, _ := strings.Cut(locale, "-")
	return code
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
		"zh": "中文",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "QuickText",
		KeyAppDescription:      "Copy your frequently used text with one click.",
		KeySearchPlaceholder:   "Search presets...",
		KeySearchResults:       "Search results",
		KeySettings:            "Settings",
		KeyLanguage:            "Language",
		KeyCopied:              "Copied to clipboard",
		KeyManagePresets:       "Manage presets",
		KeyManageGroups:        "Manage groups",
		KeyGeneral:             "General",
		KeyAbout:               "About",
		KeyGroup:               "Group",
		KeyName:                "Name",
		KeyContent:             "Content",
		KeyAdd:                 "Add",
		KeyRename:              "Rename",
		KeyDelete:              "Delete",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeyCopy:                "Copy",
		KeyEdit:                "Edit",
		KeyAddPreset:           "Add preset",
		KeyRenamePreset:        "Rename preset",
		KeyDeletePreset:        "Delete preset",
		KeyConfirmDeletePreset: "Delete preset %q?",
		KeyAddGroup:            "Add group",
		KeyRenameGroup:         "Rename group",
		KeyDeleteGroup:         "Delete group",
		KeyConfirmDeleteGroup:  "Delete group %q and all its presets?",
		KeyNothingSelected:     "Select an item first",
		KeyHotkey:              "Hotkey",
		KeyStartHidden:         "Start hidden",
		KeyCloseToTray:         "Closing the window hides it to the tray",
		KeyShowToasts:          "Show copy notifications",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyShowHide:            "Show/Hide",
		KeyVersion:             "Version",
		KeyDataFile:            "Data file",
		KeySavedToFallback:     "Presets could not be saved to %s and were saved to %s instead.",
		KeyNoResults:           "No matching presets",
		KeyDragHint:            "Drag to reorder",
		KeyPresetSaved:         "Preset saved",
	}

	l.texts["zh"] = map[string]string{
		KeyAppTitle:            "QuickText",
		KeyAppDescription:      "一键复制常用文本。",
		KeySearchPlaceholder:   "搜索预设...",
		KeySearchResults:       "搜索结果",
		KeySettings:            "设置",
		KeyLanguage:            "语言",
		KeyCopied:              "已复制到剪贴板",
		KeyManagePresets:       "管理预设",
		KeyManageGroups:        "管理分组",
		KeyGeneral:             "常规",
		KeyAbout:               "关于",
		KeyGroup:               "分组",
		KeyName:                "名称",
		KeyContent:             "内容",
		KeyAdd:                 "添加",
		KeyRename:              "重命名",
		KeyDelete:              "删除",
		KeySave:                "保存",
		KeyCancel:              "取消",
		KeyCopy:                "复制",
		KeyEdit:                "编辑",
		KeyAddPreset:           "添加预设",
		KeyRenamePreset:        "重命名预设",
		KeyDeletePreset:        "删除预设",
		KeyConfirmDeletePreset: "确定删除预设 %q 吗？",
		KeyAddGroup:            "添加分组",
		KeyRenameGroup:         "重命名分组",
		KeyDeleteGroup:         "删除分组",
		KeyConfirmDeleteGroup:  "确定删除分组 %q 及其所有预设吗？",
		KeyNothingSelected:     "请先选择一项",
		KeyHotkey:              "快捷键",
		KeyStartHidden:         "启动时隐藏",
		KeyCloseToTray:         "关闭窗口时最小化到托盘",
		KeyShowToasts:          "显示复制提示",
		KeySettingsSaved:       "设置已保存！",
		KeyShowHide:            "显示/隐藏",
		KeyVersion:             "版本",
		KeyDataFile:            "数据文件",
		KeySavedToFallback:     "无法保存到 %s，已改为保存到 %s。",
		KeyNoResults:           "没有匹配的预设",
		KeyDragHint:            "拖动以排序",
		KeyPresetSaved:         "预设已保存",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "QuickText",
		KeyAppDescription:      "Копируйте часто используемый текст одним щелчком.",
		KeySearchPlaceholder:   "Поиск заготовок...",
		KeySearchResults:       "Результаты поиска",
		KeySettings:            "Настройки",
		KeyLanguage:            "Язык",
		KeyCopied:              "Скопировано в буфер обмена",
		KeyManagePresets:       "Заготовки",
		KeyManageGroups:        "Группы",
		KeyGeneral:             "Общие",
		KeyAbout:               "О программе",
		KeyGroup:               "Группа",
		KeyName:                "Название",
		KeyContent:             "Текст",
		KeyAdd:                 "Добавить",
		KeyRename:              "Переименовать",
		KeyDelete:              "Удалить",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeyCopy:                "Копировать",
		KeyEdit:                "Изменить",
		KeyAddPreset:           "Новая заготовка",
		KeyRenamePreset:        "Переименовать заготовку",
		KeyDeletePreset:        "Удалить заготовку",
		KeyConfirmDeletePreset: "Удалить заготовку %q?",
		KeyAddGroup:            "Новая группа",
		KeyRenameGroup:         "Переименовать группу",
		KeyDeleteGroup:         "Удалить группу",
		KeyConfirmDeleteGroup:  "Удалить группу %q со всеми заготовками?",
		KeyNothingSelected:     "Сначала выберите элемент",
		KeyHotkey:              "Горячая клавиша",
		KeyStartHidden:         "Запускать скрытым",
		KeyCloseToTray:         "Закрытие окна сворачивает в трей",
		KeyShowToasts:          "Уведомлять о копировании",
		KeySettingsSaved:       "Настройки успешно сохранены!",
		KeyShowHide:            "Показать/скрыть",
		KeyVersion:             "Версия",
		KeyDataFile:            "Файл данных",
		KeySavedToFallback:     "Не удалось сохранить в %s, данные сохранены в %s.",
		KeyNoResults:           "Ничего не найдено",
		KeyDragHint:            "Перетащите для сортировки",
		KeyPresetSaved:         "Заготовка сохранена",
	}
}
