package timeutil

import (
	"strconv"
	"strings"
	"time"
)

// 録音時間が決められなかったときに使う長さ
const FallbackDuration = 24 * time.Hour

// 時・分・秒の入力文字列から録音時間を組み立てる
// 空欄はその桁だけ 0 扱い
// どれかひとつでも数値として読めなければ三つ組ごと捨てて FallbackDuration
// 合計が 0 以下になった場合も FallbackDuration
// 第二戻り値はフォールバックしたかどうか
func ResolveDuration(hourInput, minuteInput, secondInput string) (time.Duration, bool) {
	hour, ok := parseComponent(hourInput)
	if !ok {
		return FallbackDuration, true
	}
	minute, ok := parseComponent(minuteInput)
	if !ok {
		return FallbackDuration, true
	}
	second, ok := parseComponent(secondInput)
	if !ok {
		return FallbackDuration, true
	}

	total := time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second
	if total <= 0 {
		return FallbackDuration, true
	}
	return total, false
}

func parseComponent(input string) (int, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, true
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, false
	}
	return n, true
}
