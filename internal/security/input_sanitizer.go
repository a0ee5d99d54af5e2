// Package security はアプリケーションのセキュリティ機能を提供する。
//
// InputSanitizerService は利用者が入力したプロフィール文字列から
// HTMLタグを除去し、一覧画面等での表示時のXSSリスクを排除する。
// bluemondayのStrictPolicy（全タグ除去）を使用する。
package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// InputSanitizerService は入力文字列のサニタイズ機能のインターフェースを定義する。
// ユーザー名等の自由入力フィールドの保存前に使用される。
type InputSanitizerService interface {
	// Sanitize は入力からHTMLタグを除去した文字列を返す。
	// 前後の空白もトリムする。同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(input string) string
}

// inputSanitizer はInputSanitizerServiceの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type inputSanitizer struct {
	policy *bluemonday.Policy
}

// NewInputSanitizer はInputSanitizerServiceの新しいインスタンスを生成する。
// StrictPolicyはすべてのHTML要素と属性を除去する。
func NewInputSanitizer() *inputSanitizer {
	return &inputSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize は入力からHTMLタグを除去した文字列を返す。
func (s *inputSanitizer) Sanitize(input string) string {
	return strings.TrimSpace(s.policy.Sanitize(input))
}
