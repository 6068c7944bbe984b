package service

import (
	"fmt"
	"strings"
)

const (
	correctMessage   = "Correct! 🎉"
	incorrectMessage = "Incorrect. The answer is: %s"
)

// NormalizeAnswer は比較前の正規化。
// 小文字化し、前後の空白を除き、連続する空白を1つにまとめる。
func NormalizeAnswer(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// answersMatch は正規化後の完全一致で判定する (あいまい一致はしない)
func answersMatch(userAnswer, reference string) bool {
	return NormalizeAnswer(userAnswer) == NormalizeAnswer(reference)
}

func answerMessage(correct bool, reference string) string {
	if correct {
		return correctMessage
	}
	return fmt.Sprintf(incorrectMessage, reference)
}
