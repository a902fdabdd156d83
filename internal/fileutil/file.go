package fileutil

import (
	"os"
	"strings"
)

// ファイル名に使えない・シェルで面倒なようなものを置換する
func SanitizeReplaceName(name string) string {
	rep := strings.NewReplacer(
		"?", "_",
		"!", "_",
		"*", "_",
		"&", "_",
		"\n", "",
		" ", "_",
		":", "_",
		";", "_",
		"<", "_",
		">", "_",
		`"`, "_",
		`'`, "_",
		"|", "_",
		"(", "_",
		")", "_",
	)
	return rep.Replace(name)
}

// name が ext（先頭ドット込み、例 ".mp3"）で終わっていなければ付け足す
// 大文字小文字は区別しない・二重には付けない
func EnsureExtension(name string, ext string) string {
	if strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
		return name
	}
	return name + ext
}

func MkdirAllIfNotExist(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0700)
	}
	return nil
}
