// internal/kana/kana.go
package kana

// 文字種判定と変換のヘルパー。インデックスはすべて rune 単位で扱います。

// IsKanji は CJK統合漢字の範囲かを判定します
func IsKanji(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// IsHiragana はひらがなかを判定します（長音符「ー」は含まない）
func IsHiragana(r rune) bool {
	return r >= 0x3041 && r <= 0x3096
}

// IsKatakana はカタカナかを判定します
func IsKatakana(r rune) bool {
	return r >= 0x30A1 && r <= 0x30F6
}

// KatakanaToHiragana はカタカナをひらがなに変換します。
// 形態素解析器の読み（カタカナ）を入力テキスト（ひらがな）に揃えるために使います。
func KatakanaToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if IsKatakana(r) {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}
