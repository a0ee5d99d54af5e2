// Package validation は入力ペイロードの宣言的バリデーションを提供する。
//
// 各スキーマはルールを定義順に評価し、最初の違反で打ち切って
// フィールド名とメッセージを報告する。バリデーションは必ずストアアクセスの
// 前に実行され、違反があった場合に部分的な書き込みは発生しない。
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

// Violation はバリデーション違反を表す。
// 最初に違反したルールのフィールド名とメッセージを保持する。
type Violation struct {
	Field   string
	Message string
}

// requiredRule は値が空でないことを検証する。
func requiredRule(field, value string) *Violation {
	if strings.TrimSpace(value) == "" {
		return &Violation{
			Field:   field,
			Message: fmt.Sprintf("%q is required", field),
		}
	}
	return nil
}

// minLenRule は値の長さが下限以上であることを検証する。
func minLenRule(field, value string, min int) *Violation {
	if len([]rune(value)) < min {
		return &Violation{
			Field:   field,
			Message: fmt.Sprintf("%q length must be at least %d characters long", field, min),
		}
	}
	return nil
}

// maxLenRule は値の長さが上限以下であることを検証する。
func maxLenRule(field, value string, max int) *Violation {
	if len([]rune(value)) > max {
		return &Violation{
			Field:   field,
			Message: fmt.Sprintf("%q length must be less than or equal to %d characters long", field, max),
		}
	}
	return nil
}

// emailRule は値がメールアドレス構文であることを検証する。
// net/mailのアドレスパーサを使用し、表示名付きの形式は許可しない。
func emailRule(field, value string) *Violation {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return &Violation{
			Field:   field,
			Message: fmt.Sprintf("%q must be a valid email", field),
		}
	}
	return nil
}

// digitsRule は値が数字のみで構成され、ちょうどn桁であることを検証する。
func digitsRule(field, value string, n int) *Violation {
	for _, r := range value {
		if !unicode.IsDigit(r) {
			return &Violation{
				Field:   field,
				Message: fmt.Sprintf("%q must only contain digits", field),
			}
		}
	}
	if len(value) != n {
		return &Violation{
			Field:   field,
			Message: fmt.Sprintf("%q length must be %d characters long", field, n),
		}
	}
	return nil
}
